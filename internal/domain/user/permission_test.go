package user

import "testing"

func TestAuthContextCan(t *testing.T) {
	cases := []struct {
		role   Role
		module Module
		action Action
		want   bool
	}{
		{RoleEmployee, ModuleAttendance, ActionCreate, true},
		{RoleEmployee, ModuleAttendance, ActionEdit, false},
		{RoleEmployee, ModuleSalary, ActionView, false},
		{RoleManager, ModuleAttendance, ActionDelete, true},
		{RoleManager, ModuleLeave, ActionApprove, true},
		{RoleManager, ModuleSalary, ActionPay, true},
		{RoleManager, ModuleEmployee, ActionCreate, false},
		{RoleAdmin, ModuleBranch, ActionDelete, true},
	}
	for _, c := range cases {
		ctx := AuthContext{Role: c.role}
		if got := ctx.Can(c.module, c.action); got != c.want {
			t.Errorf("Can(%s, %s/%s) = %v, want %v", c.role, c.module, c.action, got, c.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	if ParseRole("admin") != RoleAdmin || ParseRole("manager") != RoleManager {
		t.Error("known roles not parsed")
	}
	if ParseRole("superuser") != RoleEmployee || ParseRole("") != RoleEmployee {
		t.Error("unknown roles must degrade to employee")
	}
}
