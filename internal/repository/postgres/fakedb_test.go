package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeDB is an in-memory stand-in for the DB interface. It dispatches on
// the statement text and mutates plain maps, which is enough to drive the
// transaction cores; locking and rollback are out of its scope.
type fakeDB struct {
	tickets      map[int64]*fakeTicket
	participants map[[2]int64]bool
	orders       []fakeOrder
	resources    map[int64]*fakeResource
	bookings     []*fakeBooking
	nextID       int64
}

type fakeTicket struct {
	eventID  int64
	quantity int
}

type fakeOrder struct {
	studentID int64
	ticketID  int64
}

type fakeResource struct {
	quantity int
	status   string
}

type fakeBooking struct {
	id         int64
	eventID    int64
	resourceID int64
	quantity   int
	start      time.Time
	end        time.Time
	reconciled bool
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		tickets:      map[int64]*fakeTicket{},
		participants: map[[2]int64]bool{},
		resources:    map[int64]*fakeResource{},
		nextID:       1,
	}
}

func (f *fakeDB) seedTicket(id, eventID int64, quantity int) {
	f.tickets[id] = &fakeTicket{eventID: eventID, quantity: quantity}
}

func (f *fakeDB) seedResource(id int64, quantity int, status string) {
	f.resources[id] = &fakeResource{quantity: quantity, status: status}
}

func (f *fakeDB) seedBooking(resourceID int64, quantity int, end time.Time) {
	f.bookings = append(f.bookings, &fakeBooking{
		id:         f.nextID,
		resourceID: resourceID,
		quantity:   quantity,
		start:      end.Add(-time.Hour),
		end:        end,
	})
	f.nextID++
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	switch {
	case strings.Contains(sql, "SELECT 1 FROM event_participants"):
		key := [2]int64{args[0].(int64), args[1].(int64)}
		if _, ok := f.participants[key]; ok {
			return fakeRow{vals: []any{1}}
		}
		return fakeRow{err: pgx.ErrNoRows}

	case strings.Contains(sql, "SELECT quantity FROM tickets"):
		t, ok := f.tickets[args[0].(int64)]
		if !ok || t.eventID != args[1].(int64) {
			return fakeRow{err: pgx.ErrNoRows}
		}
		return fakeRow{vals: []any{t.quantity}}

	case strings.Contains(sql, "o.ticket_id"):
		studentID, eventID := args[0].(int64), args[1].(int64)
		for _, o := range f.orders {
			if o.studentID != studentID {
				continue
			}
			if t, ok := f.tickets[o.ticketID]; ok && t.eventID == eventID {
				return fakeRow{vals: []any{o.ticketID}}
			}
		}
		return fakeRow{err: pgx.ErrNoRows}

	case strings.Contains(sql, "SELECT quantity, maintenance_status FROM resources"):
		r, ok := f.resources[args[0].(int64)]
		if !ok {
			return fakeRow{err: pgx.ErrNoRows}
		}
		return fakeRow{vals: []any{r.quantity, r.status}}

	case strings.Contains(sql, "INSERT INTO event_resources"):
		b := &fakeBooking{
			id:         f.nextID,
			eventID:    args[0].(int64),
			resourceID: args[1].(int64),
			quantity:   args[2].(int),
			start:      args[3].(time.Time),
			end:        args[4].(time.Time),
		}
		f.nextID++
		f.bookings = append(f.bookings, b)
		return fakeRow{vals: []any{b.id}}
	}

	return fakeRow{err: fmt.Errorf("fakeDB: unexpected query row: %s", sql)}
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	switch {
	case strings.Contains(sql, "UPDATE tickets SET quantity = quantity - 1"):
		f.tickets[args[0].(int64)].quantity--
		return pgconn.NewCommandTag("UPDATE 1"), nil

	case strings.Contains(sql, "UPDATE tickets SET quantity = quantity + 1"):
		f.tickets[args[0].(int64)].quantity++
		return pgconn.NewCommandTag("UPDATE 1"), nil

	case strings.Contains(sql, "INSERT INTO orders"):
		f.orders = append(f.orders, fakeOrder{
			studentID: args[2].(int64),
			ticketID:  args[1].(int64),
		})
		return pgconn.NewCommandTag("INSERT 0 1"), nil

	case strings.Contains(sql, "INSERT INTO event_participants"):
		f.participants[[2]int64{args[0].(int64), args[1].(int64)}] = false
		return pgconn.NewCommandTag("INSERT 0 1"), nil

	case strings.Contains(sql, "DELETE FROM orders"):
		kept := f.orders[:0]
		deleted := 0
		for _, o := range f.orders {
			if o.studentID == args[0].(int64) && o.ticketID == args[1].(int64) {
				deleted++
				continue
			}
			kept = append(kept, o)
		}
		f.orders = kept
		return pgconn.NewCommandTag(fmt.Sprintf("DELETE %d", deleted)), nil

	case strings.Contains(sql, "DELETE FROM event_participants"):
		key := [2]int64{args[0].(int64), args[1].(int64)}
		if _, ok := f.participants[key]; !ok {
			return pgconn.NewCommandTag("DELETE 0"), nil
		}
		delete(f.participants, key)
		return pgconn.NewCommandTag("DELETE 1"), nil

	case strings.Contains(sql, "UPDATE resources SET quantity = quantity - $2"):
		f.resources[args[0].(int64)].quantity -= args[1].(int)
		return pgconn.NewCommandTag("UPDATE 1"), nil

	case strings.Contains(sql, "UPDATE resources SET quantity = quantity + $2"):
		f.resources[args[0].(int64)].quantity += args[1].(int)
		return pgconn.NewCommandTag("UPDATE 1"), nil
	}

	return pgconn.CommandTag{}, fmt.Errorf("fakeDB: unexpected exec: %s", sql)
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	switch {
	case strings.Contains(sql, "SELECT id FROM tickets"):
		var out [][]any
		for id, t := range f.tickets {
			if t.eventID == args[0].(int64) {
				out = append(out, []any{id})
			}
		}
		return &fakeRows{rows: out}, nil

	case strings.Contains(sql, "SET reconciled = TRUE"):
		now := time.Now()
		var out [][]any
		for _, b := range f.bookings {
			if !b.reconciled && !b.end.After(now) {
				b.reconciled = true
				out = append(out, []any{b.resourceID, b.quantity})
			}
		}
		return &fakeRows{rows: out}, nil
	}

	return nil, fmt.Errorf("fakeDB: unexpected query: %s", sql)
}

func (f *fakeDB) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults {
	return nil
}

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanInto(dest, r.vals)
}

type fakeRows struct {
	rows [][]any
	idx  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return scanInto(dest, r.rows[r.idx-1])
}

func (r *fakeRows) Values() ([]any, error) {
	return r.rows[r.idx-1], nil
}

func scanInto(dest, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("scan: %d destinations, %d values", len(dest), len(vals))
	}

	for i, d := range dest {
		switch p := d.(type) {
		case *int:
			*p = vals[i].(int)
		case *int64:
			*p = vals[i].(int64)
		case *string:
			*p = vals[i].(string)
		case *bool:
			*p = vals[i].(bool)
		case *time.Time:
			*p = vals[i].(time.Time)
		default:
			return fmt.Errorf("scan: unsupported destination %T", d)
		}
	}

	return nil
}
