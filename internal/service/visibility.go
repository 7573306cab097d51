package service

import (
	"helpdesk/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Requester is the authenticated identity a query runs as. UserID may
// be NilObjectID and Branch empty when the session carries no such
// context (a Supervisor claim without a branch, for instance).
type Requester struct {
	Role   string
	UserID primitive.ObjectID
	Branch string
}

// TicketQuery carries the optional report-style parameters a list
// request may add on top of the role scope.
type TicketQuery struct {
	Status string
	// Branch is the report override. It only narrows the result for
	// admins; other roles are already branch- or identity-scoped.
	Branch string
}

// BuildVisibilityFilter produces the predicate the ticket collection
// must apply for this requester. The result is the AND of a role
// clause and any extra clauses; it never fails on valid input.
//
// Policy note ("default-allow"): an unrecognized role, or a
// Supervisor with neither user id nor branch in context, yields an
// unrestricted filter. This mirrors the behavior the system has
// always had and is pinned by tests; hardening it is a deliberate
// follow-up decision, not a drive-by fix.
func BuildVisibilityFilter(r Requester, q TicketQuery) bson.M {
	filter := bson.M{}

	switch r.Role {
	case model.RoleStaff:
		// Staff see tickets they created or are currently assigned
		// to. Assignment is evaluated fresh per query, so
		// reassignment changes visibility immediately.
		filter["$or"] = bson.A{
			bson.M{"createdBy": r.UserID},
			bson.M{"assignedTo": r.UserID},
		}
	case model.RoleCustomer:
		// Customers only ever see tickets they authored.
		filter["createdBy"] = r.UserID
	case model.RoleSupervisor:
		conditions := bson.A{}
		if r.Branch != "" {
			conditions = append(conditions, bson.M{"branch": r.Branch})
		}
		if !r.UserID.IsZero() {
			conditions = append(conditions,
				bson.M{"createdBy": r.UserID},
				bson.M{"assignedTo": r.UserID},
			)
		}
		if len(conditions) > 0 {
			filter["$or"] = conditions
		}
	case model.RoleAdmin:
		if q.Branch != "" {
			filter["branch"] = q.Branch
		}
	}
	// Any other role falls through with no role clause (default-allow).

	if q.Status != "" {
		filter["status"] = q.Status
	}

	return filter
}
