package registry

import (
	"context"
	"testing"
)

type stubFrontend struct{ id, title string }

func (s stubFrontend) ID() string                         { return s.id }
func (s stubFrontend) Title() string                      { return s.title }
func (s stubFrontend) Run(context.Context, Options) error { return nil }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Frontend { return stubFrontend{"stub-b", "Stub B"} })
	Register("stub-a", func() Frontend { return stubFrontend{"stub-a", "Stub A"} })

	if !Exists("stub-a") {
		t.Error("Exists(stub-a) = false, expected true")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true, expected false")
	}

	f, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if f.ID() != "stub-b" || f.Title() != "Stub B" {
		t.Errorf("Create() = %v, expected stub-b", f)
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}

	var ids []string
	for _, info := range List() {
		if info.ID == "stub-a" || info.ID == "stub-b" {
			ids = append(ids, info.ID+"="+info.Title)
		}
	}
	if len(ids) != 2 || ids[0] != "stub-a=Stub A" || ids[1] != "stub-b=Stub B" {
		t.Errorf("List() = %v, expected sorted stubs with titles", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Frontend { return stubFrontend{"stub-dup", "Dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Frontend { return stubFrontend{"stub-dup", "Dup"} })
}
