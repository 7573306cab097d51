package service

import (
	"context"
	"sync"
	"time"

	"helpdesk/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// matchesTicket evaluates the predicate vocabulary the services
// build (field equality, $or, $ne, $gte) against a ticket, so the
// visibility rules can be tested against in-memory data.
func matchesTicket(filter bson.M, t *model.Ticket) bool {
	for key, want := range filter {
		if key == "$or" {
			conditions, ok := want.(bson.A)
			if !ok {
				return false
			}
			anyMatch := false
			for _, cond := range conditions {
				m, ok := cond.(bson.M)
				if ok && matchesTicket(m, t) {
					anyMatch = true
					break
				}
			}
			if !anyMatch {
				return false
			}
			continue
		}
		if !ticketFieldMatches(t, key, want) {
			return false
		}
	}
	return true
}

func ticketFieldValue(t *model.Ticket, key string) interface{} {
	switch key {
	case "createdBy":
		return t.CreatedBy
	case "assignedTo":
		return t.AssignedTo
	case "branch":
		return t.Branch
	case "status":
		return t.Status
	case "createdAt":
		return t.CreatedAt
	case "updatedAt":
		return t.UpdatedAt
	}
	return nil
}

func ticketFieldMatches(t *model.Ticket, key string, want interface{}) bool {
	got := ticketFieldValue(t, key)
	if ops, ok := want.(bson.M); ok {
		for op, v := range ops {
			switch op {
			case "$ne":
				if valuesEqual(got, v) {
					return false
				}
			case "$gte":
				gotTime, okGot := got.(time.Time)
				wantTime, okWant := v.(time.Time)
				if !okGot || !okWant || gotTime.Before(wantTime) {
					return false
				}
			default:
				return false
			}
		}
		return true
	}
	return valuesEqual(got, want)
}

func valuesEqual(got, want interface{}) bool {
	switch w := want.(type) {
	case primitive.ObjectID:
		g, ok := got.(primitive.ObjectID)
		return ok && g == w
	case string:
		g, ok := got.(string)
		return ok && g == w
	}
	return false
}

// fakeTicketRepo is an in-memory ITicketRepository
type fakeTicketRepo struct {
	mu      sync.Mutex
	tickets []*model.Ticket
}

func (r *fakeTicketRepo) Create(_ context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	ticket.ID = primitive.NewObjectID()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now
	r.tickets = append(r.tickets, ticket)
	return ticket, nil
}

func (r *fakeTicketRepo) Find(_ context.Context, filter bson.M) ([]*model.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Ticket
	for _, t := range r.tickets {
		if matchesTicket(filter, t) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTicketRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeTicketRepo) UpdateByID(_ context.Context, id primitive.ObjectID, fields bson.M) (*model.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tickets {
		if t.ID != id {
			continue
		}
		if v, ok := fields["status"]; ok {
			t.Status = v.(string)
		}
		if v, ok := fields["assignedTo"]; ok {
			t.AssignedTo = v.(primitive.ObjectID)
		}
		t.UpdatedAt = time.Now()
		return t, nil
	}
	return nil, nil
}

func (r *fakeTicketRepo) Count(_ context.Context, filter bson.M) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, t := range r.tickets {
		if matchesTicket(filter, t) {
			n++
		}
	}
	return n, nil
}

// fakeUserRepo is an in-memory IUserRepository
type fakeUserRepo struct {
	mu    sync.Mutex
	users []*model.User
}

func (r *fakeUserRepo) add(user *model.User) *model.User {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users = append(r.users, user)
	return user
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	return r.add(user), nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *fakeUserRepo) UpdateByID(_ context.Context, id primitive.ObjectID, fields bson.M) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID != id {
			continue
		}
		if v, ok := fields["personName"]; ok {
			u.PersonName = v.(string)
		}
		if v, ok := fields["mobileNumber"]; ok {
			u.MobileNumber = v.(string)
		}
		if v, ok := fields["role"]; ok {
			u.Role = v.(string)
		}
		if v, ok := fields["isAdmin"]; ok {
			u.IsAdmin = v.(bool)
		}
		if v, ok := fields["branch"]; ok {
			u.Branch = v.(string)
		}
		if v, ok := fields["department"]; ok {
			u.Department = v.(string)
		}
		u.UpdatedAt = time.Now()
		return u, nil
	}
	return nil, nil
}

// fakeOTPRepo is an in-memory IOTPRepository. Tests can pre-load
// records with arbitrary CreatedAt values to model aged codes.
type fakeOTPRepo struct {
	mu      sync.Mutex
	records []*model.OTP
}

func (r *fakeOTPRepo) Create(_ context.Context, otp *model.OTP) (*model.OTP, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	otp.ID = primitive.NewObjectID()
	if otp.CreatedAt.IsZero() {
		otp.CreatedAt = time.Now()
	}
	r.records = append(r.records, otp)
	return otp, nil
}

func (r *fakeOTPRepo) FindLatest(_ context.Context, email string, issuedAfter time.Time) (*model.OTP, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *model.OTP
	for _, rec := range r.records {
		if rec.Email != email || rec.CreatedAt.Before(issuedAfter) {
			continue
		}
		if latest == nil || rec.CreatedAt.After(latest.CreatedAt) {
			latest = rec
		}
	}
	return latest, nil
}

func (r *fakeOTPRepo) DeleteByEmail(_ context.Context, email string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []*model.OTP
	var deleted int64
	for _, rec := range r.records {
		if rec.Email == email {
			deleted++
			continue
		}
		kept = append(kept, rec)
	}
	r.records = kept
	return deleted, nil
}

func (r *fakeOTPRepo) DeleteExpired(_ context.Context, issuedBefore time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []*model.OTP
	var deleted int64
	for _, rec := range r.records {
		if rec.CreatedAt.Before(issuedBefore) {
			deleted++
			continue
		}
		kept = append(kept, rec)
	}
	r.records = kept
	return deleted, nil
}

// fakeMailer records deliveries and can be told to fail
type fakeMailer struct {
	mu    sync.Mutex
	sent  []string
	bodys []string
	err   error
}

func (m *fakeMailer) Send(to, _ string, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	m.bodys = append(m.bodys, body)
	return nil
}
