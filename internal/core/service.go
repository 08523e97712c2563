package core

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/JonMunkholm/atelier/internal/config"
	"github.com/JonMunkholm/atelier/internal/logging"
	"github.com/JonMunkholm/atelier/internal/table"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// summaryConcurrency bounds parallel record counts on the dashboard.
const summaryConcurrency = 4

// Service is the main entry point for list page operations.
type Service struct {
	source   RecordSource
	sessions *SessionStore
	cfg      config.TableConfig
	exporter table.Exporter
	exports  *ExportLimiter
}

// NewService creates a Service reading records from source.
func NewService(source RecordSource, cfg *config.Config) (*Service, error) {
	if source == nil {
		return nil, fmt.Errorf("record source is required")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	return &Service{
		source:   source,
		sessions: NewSessionStore(cfg.Table.SessionTTL, cfg.Table.MaxSessions),
		cfg:      cfg.Table,
		exporter: table.CSVExporter{Legacy: cfg.Table.ExportLegacy},
		exports:  NewExportLimiter(cfg.Table.MaxConcurrentExports, cfg.Table.ExportWait),
	}, nil
}

// ListTables returns information about all registered tables.
func (s *Service) ListTables() []TableInfo {
	defs := All()
	infos := make([]TableInfo, len(defs))
	for i, def := range defs {
		infos[i] = s.info(def)
	}
	return infos
}

// ListTablesByGroup returns tables organized by group.
func (s *Service) ListTablesByGroup() map[string][]TableInfo {
	result := make(map[string][]TableInfo)
	for _, group := range Groups() {
		for _, def := range ByGroup(group) {
			result[group] = append(result[group], s.info(def))
		}
	}
	return result
}

// info fills in the effective page size.
func (s *Service) info(def TableDefinition) TableInfo {
	info := def.Info
	info.PageSize = s.pageSize(def)
	return info
}

// Summaries counts the records behind every registered table, a few at a time.
// A failing count is reported on its summary and does not fail the others.
func (s *Service) Summaries(ctx context.Context) ([]TableSummary, error) {
	defs := All()
	out := make([]TableSummary, len(defs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(summaryConcurrency)

	for i, def := range defs {
		g.Go(func() error {
			out[i].Info = s.info(def)
			n, err := s.count(gctx, def)
			if err != nil {
				logging.WithFields(ctx, "table", def.Info.Key).Warn("count records failed", "error", err)
				out[i].Error = MapError(err).Message
				return nil
			}
			out[i].RecordCount = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) count(ctx context.Context, def TableDefinition) (int64, error) {
	if c, ok := s.source.(Counter); ok {
		return c.Count(ctx, def)
	}
	records, err := s.source.Records(ctx, def)
	if err != nil {
		return 0, err
	}
	return int64(len(records)), nil
}

// Definition returns the registered definition for tableKey.
func (s *Service) Definition(tableKey string) (TableDefinition, error) {
	def, ok := Get(tableKey)
	if !ok {
		return TableDefinition{}, fmt.Errorf("%w: %s", ErrTableNotFound, tableKey)
	}
	return def, nil
}

// DefaultState returns the state a new instance of tableKey starts in.
func (s *Service) DefaultState(tableKey string) (table.State, error) {
	def, err := s.Definition(tableKey)
	if err != nil {
		return table.State{}, err
	}
	return table.NewState(s.pageSize(def), def.InitialFilters), nil
}

// ClampPageSize bounds a requested page size to 1..MaxPageSize.
func (s *Service) ClampPageSize(n int) int {
	if n < 1 {
		return 1
	}
	if s.cfg.MaxPageSize > 0 && n > s.cfg.MaxPageSize {
		return s.cfg.MaxPageSize
	}
	return n
}

func (s *Service) pageSize(def TableDefinition) int {
	if def.PageSize > 0 {
		return s.ClampPageSize(def.PageSize)
	}
	return s.cfg.DefaultPageSize
}

// engine returns the table engine for a definition.
func (s *Service) engine(def TableDefinition) table.Table {
	return def.Table(s.cfg.NestedSearch)
}

// load fetches the raw records for a definition.
func (s *Service) load(ctx context.Context, def TableDefinition) ([]table.Record, error) {
	start := time.Now()
	records, err := s.source.Records(ctx, def)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceLoad, def.Info.Key, err)
	}
	logging.WithFields(ctx, "table", def.Info.Key).Debug("records loaded",
		"count", len(records),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return records, nil
}

// Query computes one page of tableKey for an explicit state, without a session.
func (s *Service) Query(ctx context.Context, tableKey string, state table.State) (*TableDataResult, error) {
	def, err := s.Definition(tableKey)
	if err != nil {
		return nil, err
	}
	records, err := s.load(ctx, def)
	if err != nil {
		return nil, err
	}
	return s.result(def, records, state), nil
}

func (s *Service) result(def TableDefinition, records []table.Record, state table.State) *TableDataResult {
	v := s.engine(def).View(records, state)
	return &TableDataResult{
		TableKey:      def.Info.Key,
		Columns:       def.Info.Columns,
		Rows:          displayRows(v.Visible, def.Columns),
		Records:       v.Visible,
		TotalFiltered: v.TotalFiltered,
		TotalPages:    v.TotalPages,
		State:         state,
	}
}

// CreateSession opens a new table instance for tableKey.
func (s *Service) CreateSession(ctx context.Context, tableKey string) (*Session, error) {
	state, err := s.DefaultState(tableKey)
	if err != nil {
		return nil, err
	}
	sess, err := s.sessions.Create(tableKey, state)
	if err != nil {
		return nil, err
	}
	logging.WithFields(ctx, "table", tableKey, "session", sess.ID).Debug("session created")
	return sess, nil
}

// Session returns an open session.
func (s *Service) Session(id uuid.UUID) (*Session, error) {
	return s.sessions.Get(id)
}

// CloseSession discards a session.
func (s *Service) CloseSession(id uuid.UUID) {
	s.sessions.Delete(id)
}

// OpenSessions returns the number of live sessions.
func (s *Service) OpenSessions() int {
	return s.sessions.Len()
}

// Apply runs one transition on a session and returns the new state.
func (s *Service) Apply(ctx context.Context, id uuid.UUID, tr Transition) (table.State, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return table.State{}, err
	}
	def, err := s.Definition(sess.TableKey)
	if err != nil {
		return table.State{}, err
	}
	engine := s.engine(def)

	_, state, err := s.sessions.Apply(id, func(cur table.State) table.State {
		return tr(engine, cur)
	})
	if err != nil {
		return table.State{}, err
	}
	logging.WithFields(ctx, "table", sess.TableKey, "session", id).Debug("state changed",
		"page", state.CurrentPage,
		"filters", len(state.Filters),
		"search", state.SearchQuery != "",
	)
	return state, nil
}

// View computes the current page of a session. The state is read once, so
// a transition racing with the view never yields a mixed result.
func (s *Service) View(ctx context.Context, id uuid.UUID) (*TableDataResult, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	def, err := s.Definition(sess.TableKey)
	if err != nil {
		return nil, err
	}
	state := sess.State()

	records, err := s.load(ctx, def)
	if err != nil {
		return nil, err
	}
	res := s.result(def, records, state)
	res.SessionID = id.String()
	return res, nil
}

// Export writes the filtered and sorted rows of a session, unpaginated, and
// returns the suggested file name.
func (s *Service) Export(ctx context.Context, id uuid.UUID, w io.Writer) (string, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return "", err
	}
	return s.ExportTable(ctx, sess.TableKey, sess.State(), w)
}

// ExportTable writes the filtered and sorted rows of tableKey for state.
func (s *Service) ExportTable(ctx context.Context, tableKey string, state table.State, w io.Writer) (string, error) {
	def, err := s.Definition(tableKey)
	if err != nil {
		return "", err
	}
	if err := s.exports.Acquire(ctx); err != nil {
		return "", err
	}
	defer s.exports.Release()

	records, err := s.load(ctx, def)
	if err != nil {
		return "", err
	}

	rows := s.engine(def).Rows(records, state)
	if err := s.exporter.Export(w, rows, def.Columns); err != nil {
		return "", fmt.Errorf("export %s: %w", tableKey, err)
	}
	logging.WithFields(ctx, "table", tableKey).Info("table exported", "rows", len(rows))
	return ExportFilename(tableKey, s.exporter, time.Now()), nil
}

// DrainExports waits for running exports to finish.
func (s *Service) DrainExports(ctx context.Context) error {
	return s.exports.WaitForDrain(ctx)
}

// ContentType returns the MIME type of exports.
func (s *Service) ContentType() string {
	return s.exporter.ContentType()
}

// ExportFilename builds "<tableKey>_<timestamp>.<ext>".
func ExportFilename(tableKey string, e table.Exporter, at time.Time) string {
	return fmt.Sprintf("%s_%s.%s", tableKey, at.Format("20060102_150405"), e.Extension())
}
