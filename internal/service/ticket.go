package service

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/apperror"
	"helpdesk/internal/model"
	"helpdesk/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TicketService owns the ticket lifecycle: creation, role-scoped
// listing, status/assignment updates and the dashboard counters.
type TicketService struct {
	tickets repository.ITicketRepository
	users   repository.IUserRepository
}

func NewTicketService(tickets repository.ITicketRepository, users repository.IUserRepository) *TicketService {
	return &TicketService{tickets: tickets, users: users}
}

// CreateTicketRequest carries the caller-supplied ticket fields.
// The creator identity comes from the session, never from here.
type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Priority    string `json:"priority"`
	Branch      string `json:"branch" binding:"required"`
	AssignedTo  string `json:"assignedTo"`
}

// UpdateTicketRequest carries the mutable lifecycle fields. Nil means
// leave untouched; assignedTo="" clears the assignee.
type UpdateTicketRequest struct {
	Status     *string `json:"status"`
	AssignedTo *string `json:"assignedTo"`
}

// Create inserts a new ticket. Status always starts Open; priority
// defaults to Medium. An assignee, if given, must resolve to a user.
func (s *TicketService) Create(ctx context.Context, createdBy primitive.ObjectID, req *CreateTicketRequest) (*model.TicketResponse, error) {
	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !model.IsValidPriority(priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", apperror.ErrInvalidInput, req.Priority)
	}

	ticket := &model.Ticket{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    priority,
		Branch:      req.Branch,
		Status:      model.StatusOpen,
		CreatedBy:   createdBy,
	}

	if req.AssignedTo != "" {
		assignee, err := s.resolveAssignee(ctx, req.AssignedTo)
		if err != nil {
			return nil, err
		}
		ticket.AssignedTo = assignee
	}

	created, err := s.tickets.Create(ctx, ticket)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}

	return s.toResponse(ctx, created)
}

// List returns the tickets visible to the requester, creator and
// assignee resolved to display identities.
func (s *TicketService) List(ctx context.Context, r Requester, q TicketQuery) ([]*model.TicketResponse, error) {
	if q.Status != "" && !model.IsValidStatus(q.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", apperror.ErrInvalidInput, q.Status)
	}

	filter := BuildVisibilityFilter(r, q)
	tickets, err := s.tickets.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}

	return s.toResponses(ctx, tickets)
}

// Update applies a status and/or assignee change. Status is validated
// for membership only; transitions between the six states are
// otherwise unconstrained.
func (s *TicketService) Update(ctx context.Context, id string, req *UpdateTicketRequest) (*model.TicketResponse, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid ticket id", apperror.ErrInvalidInput)
	}

	fields := bson.M{}
	if req.Status != nil {
		if !model.IsValidStatus(*req.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", apperror.ErrInvalidInput, *req.Status)
		}
		fields["status"] = *req.Status
	}
	if req.AssignedTo != nil {
		if *req.AssignedTo == "" {
			fields["assignedTo"] = primitive.NilObjectID
		} else {
			assignee, err := s.resolveAssignee(ctx, *req.AssignedTo)
			if err != nil {
				return nil, err
			}
			fields["assignedTo"] = assignee
		}
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", apperror.ErrInvalidInput)
	}

	updated, err := s.tickets.UpdateByID(ctx, objID, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: ticket %s", apperror.ErrNotFound, id)
	}

	return s.toResponse(ctx, updated)
}

// Stats computes the dashboard counters on demand; nothing is cached.
func (s *TicketService) Stats(ctx context.Context) (*model.TicketStats, error) {
	todayStart := startOfDay(time.Now())

	pending, err := s.tickets.Count(ctx, bson.M{"status": bson.M{"$ne": model.StatusClosed}})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}
	createdToday, err := s.tickets.Count(ctx, bson.M{"createdAt": bson.M{"$gte": todayStart}})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}
	closedToday, err := s.tickets.Count(ctx, bson.M{
		"status":    model.StatusClosed,
		"updatedAt": bson.M{"$gte": todayStart},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}

	return &model.TicketStats{
		Pending:      pending,
		CreatedToday: createdToday,
		ClosedToday:  closedToday,
	}, nil
}

// startOfDay returns local midnight for t
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func (s *TicketService) resolveAssignee(ctx context.Context, idHex string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid assignee id", apperror.ErrInvalidInput)
	}
	user, err := s.users.FindByID(ctx, objID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
	}
	if user == nil {
		return primitive.NilObjectID, fmt.Errorf("%w: assignee", apperror.ErrUserNotFound)
	}
	return objID, nil
}

func (s *TicketService) toResponse(ctx context.Context, t *model.Ticket) (*model.TicketResponse, error) {
	resolved, err := s.toResponses(ctx, []*model.Ticket{t})
	if err != nil {
		return nil, err
	}
	return resolved[0], nil
}

// toResponses resolves creator/assignee references via secondary
// lookups, deduplicated across the batch.
func (s *TicketService) toResponses(ctx context.Context, tickets []*model.Ticket) ([]*model.TicketResponse, error) {
	refs := make(map[primitive.ObjectID]*model.UserRef)
	lookup := func(id primitive.ObjectID) (*model.UserRef, error) {
		if id.IsZero() {
			return nil, nil
		}
		if ref, ok := refs[id]; ok {
			return ref, nil
		}
		user, err := s.users.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperror.ErrStoreFailure, err)
		}
		var ref *model.UserRef
		if user != nil {
			ref = &model.UserRef{ID: user.ID.Hex(), Username: user.Username}
		}
		refs[id] = ref
		return ref, nil
	}

	responses := make([]*model.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		creator, err := lookup(t.CreatedBy)
		if err != nil {
			return nil, err
		}
		assignee, err := lookup(t.AssignedTo)
		if err != nil {
			return nil, err
		}
		responses = append(responses, &model.TicketResponse{
			ID:          t.ID.Hex(),
			Title:       t.Title,
			Description: t.Description,
			Category:    t.Category,
			Priority:    t.Priority,
			Branch:      t.Branch,
			Status:      t.Status,
			CreatedBy:   creator,
			AssignedTo:  assignee,
			CreatedAt:   t.CreatedAt,
			UpdatedAt:   t.UpdatedAt,
		})
	}
	return responses, nil
}
