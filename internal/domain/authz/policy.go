package authz

import (
	"fmt"

	"cable-billing/internal/pkg/apperrors"
)

type Resource string

const (
	ResourceAgent      Resource = "agent"
	ResourceArea       Resource = "area"
	ResourceCustomer   Resource = "customer"
	ResourceConnection Resource = "connection"
	ResourceBill       Resource = "bill"
	ResourcePayment    Resource = "payment"
	ResourceRisk       Resource = "risk"
)

type Action string

const (
	ActionList   Action = "list"
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Subject describes who a record belongs to. AgentID is the employee
// responsible for it (the area's agent, or the agent record itself).
type Subject struct {
	AgentID    int64
	CustomerID int64
}

type rule func(actor Actor, subject Subject) bool

type policyKey struct {
	resource Resource
	action   Action
}

var policies = map[policyKey]rule{
	{ResourceAgent, ActionList}:   privileged,
	{ResourceAgent, ActionView}:   selfOrPrivileged,
	{ResourceAgent, ActionCreate}: privileged,
	{ResourceAgent, ActionUpdate}: privileged,
	{ResourceAgent, ActionDelete}: privileged,

	{ResourceArea, ActionList}:   staff,
	{ResourceArea, ActionView}:   responsibleOrPrivileged,
	{ResourceArea, ActionCreate}: privileged,
	{ResourceArea, ActionUpdate}: privileged,
	{ResourceArea, ActionDelete}: privileged,

	{ResourceCustomer, ActionList}:   staff,
	{ResourceCustomer, ActionView}:   ownerOrResponsible,
	{ResourceCustomer, ActionCreate}: responsibleOrPrivileged,
	{ResourceCustomer, ActionUpdate}: responsibleOrPrivileged,
	{ResourceCustomer, ActionDelete}: privileged,

	{ResourceConnection, ActionView}:   ownerOrResponsible,
	{ResourceConnection, ActionCreate}: responsibleOrPrivileged,
	{ResourceConnection, ActionUpdate}: responsibleOrPrivileged,

	{ResourceBill, ActionView}:   ownerOrResponsible,
	{ResourceBill, ActionCreate}: privileged,

	{ResourcePayment, ActionList}:   staff,
	{ResourcePayment, ActionView}:   ownerOrResponsible,
	{ResourcePayment, ActionCreate}: collector,

	{ResourceRisk, ActionView}: responsibleOrPrivileged,
}

// Authorize returns nil when actor may perform action on a resource owned by subject.
// Unknown combinations are denied.
func Authorize(actor Actor, resource Resource, action Action, subject Subject) error {
	if actor.Kind == KindAnonymous {
		return fmt.Errorf("%w: authentication required", apperrors.ErrUnauthorized)
	}
	allow, ok := policies[policyKey{resource, action}]
	if !ok || !allow(actor, subject) {
		return fmt.Errorf("%w: %s may not %s %s", apperrors.ErrForbidden, actor.Kind, action, resource)
	}
	return nil
}

func staff(actor Actor, _ Subject) bool {
	return actor.IsStaff()
}

func privileged(actor Actor, _ Subject) bool {
	return actor.IsPrivileged()
}

func selfOrPrivileged(actor Actor, subject Subject) bool {
	return actor.IsPrivileged() || (actor.Kind == KindEmployee && actor.ID == subject.AgentID)
}

func responsibleOrPrivileged(actor Actor, subject Subject) bool {
	return selfOrPrivileged(actor, subject)
}

func ownerOrResponsible(actor Actor, subject Subject) bool {
	if actor.Kind == KindCustomer {
		return actor.ID == subject.CustomerID
	}
	return responsibleOrPrivileged(actor, subject)
}

// collector admits the area's agent and privileged actors. The payment itself must still
// name the collecting employee.
func collector(actor Actor, subject Subject) bool {
	return actor.IsPrivileged() || (actor.Kind == KindEmployee && actor.ID == subject.AgentID)
}
