package user

// Action names one operation inside a module.
type Action string

const (
	ActionView    Action = "view"
	ActionViewOwn Action = "view_own"
	ActionCreate  Action = "create"
	ActionEdit    Action = "edit"
	ActionDelete  Action = "delete"
	ActionApprove Action = "approve"
	ActionPay     Action = "pay"
)

// Module is a back-office area that actions apply to.
type Module string

const (
	ModuleAttendance Module = "attendance"
	ModuleLeave      Module = "leave"
	ModuleSalary     Module = "salary"
	ModuleEmployee   Module = "employee"
	ModuleBranch     Module = "branch"
)

// Capability is the set of actions a role may perform in one module.
type Capability struct {
	Module  Module
	Actions map[Action]struct{}
}

func capability(module Module, actions ...Action) Capability {
	set := make(map[Action]struct{}, len(actions))
	for _, a := range actions {
		set[a] = struct{}{}
	}
	return Capability{Module: module, Actions: set}
}

// RoleCapabilities maps each role onto its capability set. Resolved once
// per request into an AuthContext; handlers and services check the typed
// context instead of re-reading raw claims.
var RoleCapabilities = map[Role][]Capability{
	RoleAdmin: {
		capability(ModuleAttendance, ActionView, ActionViewOwn, ActionCreate, ActionEdit, ActionDelete, ActionApprove),
		capability(ModuleLeave, ActionView, ActionViewOwn, ActionCreate, ActionApprove),
		capability(ModuleSalary, ActionView, ActionCreate, ActionEdit, ActionPay),
		capability(ModuleEmployee, ActionView, ActionCreate, ActionEdit, ActionDelete),
		capability(ModuleBranch, ActionView, ActionCreate, ActionEdit, ActionDelete),
	},
	RoleManager: {
		capability(ModuleAttendance, ActionView, ActionViewOwn, ActionCreate, ActionEdit, ActionDelete, ActionApprove),
		capability(ModuleLeave, ActionView, ActionViewOwn, ActionCreate, ActionApprove),
		capability(ModuleSalary, ActionView, ActionCreate, ActionEdit, ActionPay),
		capability(ModuleEmployee, ActionView, ActionEdit),
		capability(ModuleBranch, ActionView),
	},
	RoleEmployee: {
		capability(ModuleAttendance, ActionViewOwn, ActionCreate),
		capability(ModuleLeave, ActionViewOwn, ActionCreate),
	},
}

// AuthContext is the typed authorization context resolved once per
// request from the verified token claims.
type AuthContext struct {
	UserID     string
	EmployeeID *string
	Role       Role
}

// Can reports whether the context's role grants an action in a module.
func (a AuthContext) Can(module Module, action Action) bool {
	for _, cap := range RoleCapabilities[a.Role] {
		if cap.Module != module {
			continue
		}
		_, ok := cap.Actions[action]
		return ok
	}
	return false
}
