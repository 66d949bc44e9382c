package authz

import "context"

type Kind int

const (
	KindAnonymous Kind = iota
	KindCustomer
	KindEmployee
	KindSuperUser
)

func (k Kind) String() string {
	switch k {
	case KindCustomer:
		return "customer"
	case KindEmployee:
		return "employee"
	case KindSuperUser:
		return "superuser"
	default:
		return "anonymous"
	}
}

// Actor is the authenticated principal behind a request.
// ID is the customer ID for customers and the agent ID for employees.
type Actor struct {
	Kind    Kind
	ID      int64
	IsAdmin bool
}

func Anonymous() Actor { return Actor{Kind: KindAnonymous} }

func Customer(id int64) Actor { return Actor{Kind: KindCustomer, ID: id} }

func Employee(id int64, isAdmin bool) Actor {
	return Actor{Kind: KindEmployee, ID: id, IsAdmin: isAdmin}
}

func SuperUser() Actor { return Actor{Kind: KindSuperUser} }

func (a Actor) IsStaff() bool {
	return a.Kind == KindEmployee || a.Kind == KindSuperUser
}

func (a Actor) IsPrivileged() bool {
	return a.Kind == KindSuperUser || (a.Kind == KindEmployee && a.IsAdmin)
}

type actorKey struct{}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func FromContext(ctx context.Context) Actor {
	if actor, ok := ctx.Value(actorKey{}).(Actor); ok {
		return actor
	}
	return Anonymous()
}
