//go:build unit

package dbtest

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// MockDBTX records statements. Bound arguments arrive as one []any so
// expectations can match them with mock.MatchedBy.
type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	ret := m.Called(ctx, sql, args)
	return ret.Get(0).(pgconn.CommandTag), ret.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	ret := m.Called(ctx, sql, args)
	rows, _ := ret.Get(0).(pgx.Rows)
	return rows, ret.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	ret := m.Called(ctx, sql, args)
	return ret.Get(0).(pgx.Row)
}

// Tag builds a command tag such as "UPDATE 1".
func Tag(s string) pgconn.CommandTag {
	return pgconn.NewCommandTag(s)
}

// StubRow scans Values into the destinations in order, or returns Err.
type StubRow struct {
	Values []any
	Err    error
}

func (r StubRow) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	return assign(r.Values, dest)
}

// StubRows iterates over fixed rows.
type StubRows struct {
	Rows    [][]any
	IterErr error
	pos     int
	closed  bool
}

func NewStubRows(rows ...[]any) *StubRows {
	return &StubRows{Rows: rows}
}

func (r *StubRows) Close()                                       { r.closed = true }
func (r *StubRows) Err() error                                   { return r.IterErr }
func (r *StubRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *StubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *StubRows) RawValues() [][]byte                          { return nil }
func (r *StubRows) Conn() *pgx.Conn                              { return nil }
func (r *StubRows) Closed() bool                                 { return r.closed }

func (r *StubRows) Next() bool {
	if r.pos >= len(r.Rows) {
		r.closed = true
		return false
	}
	r.pos++
	return true
}

func (r *StubRows) Scan(dest ...any) error {
	return assign(r.Rows[r.pos-1], dest)
}

func (r *StubRows) Values() ([]any, error) {
	return r.Rows[r.pos-1], nil
}

func assign(values, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values for %d destinations", len(values), len(dest))
	}
	for i, v := range values {
		if v == nil {
			continue
		}
		dv := reflect.ValueOf(dest[i])
		if dv.Kind() != reflect.Pointer || dv.IsNil() {
			return fmt.Errorf("scan: destination %d is not a pointer", i)
		}
		sv := reflect.ValueOf(v)
		if !sv.Type().AssignableTo(dv.Elem().Type()) {
			return fmt.Errorf("scan: cannot assign %T to %s", v, dv.Elem().Type())
		}
		dv.Elem().Set(sv)
	}
	return nil
}
