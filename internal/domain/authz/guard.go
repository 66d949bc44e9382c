package authz

import (
	"context"
	"log/slog"
)

// SubjectResolver looks up ownership of stored records.
type SubjectResolver interface {
	AreaSubject(ctx context.Context, areaID int64) (Subject, error)
	CustomerSubject(ctx context.Context, customerID int64) (Subject, error)
	ConnectionSubject(ctx context.Context, connectionID int64) (Subject, error)
}

// Guard applies the policy table to the actor stored in the request context.
type Guard struct {
	resolver SubjectResolver
	logger   *slog.Logger
}

func NewGuard(resolver SubjectResolver, logger *slog.Logger) *Guard {
	if resolver == nil {
		panic("subject resolver cannot be nil")
	}
	return &Guard{resolver: resolver, logger: logger.With("component", "authzGuard")}
}

func (g *Guard) Check(ctx context.Context, resource Resource, action Action, subject Subject) error {
	actor := FromContext(ctx)
	if err := Authorize(actor, resource, action, subject); err != nil {
		g.logger.WarnContext(ctx, "Access denied",
			slog.String("actor", actor.Kind.String()),
			slog.Int64("actorID", actor.ID),
			slog.String("resource", string(resource)),
			slog.String("action", string(action)))
		return err
	}
	return nil
}

// CheckArea authorizes resource records that hang off an area, including the area itself.
func (g *Guard) CheckArea(ctx context.Context, resource Resource, action Action, areaID int64) error {
	subject, err := g.resolver.AreaSubject(ctx, areaID)
	if err != nil {
		return err
	}
	return g.Check(ctx, resource, action, subject)
}

func (g *Guard) CheckCustomer(ctx context.Context, resource Resource, action Action, customerID int64) error {
	subject, err := g.resolver.CustomerSubject(ctx, customerID)
	if err != nil {
		return err
	}
	return g.Check(ctx, resource, action, subject)
}

func (g *Guard) CheckConnection(ctx context.Context, resource Resource, action Action, connectionID int64) error {
	subject, err := g.resolver.ConnectionSubject(ctx, connectionID)
	if err != nil {
		return err
	}
	return g.Check(ctx, resource, action, subject)
}
