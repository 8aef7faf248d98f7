package errors

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "runtime error",
			code:    "E001",
			wantMsg: "Unbalanced collector stack",
			wantCat: CategoryRuntime,
		},
		{
			name:    "config error",
			code:    "E101",
			wantMsg: "Project configuration not found",
			wantCat: CategoryConfig,
		},
		{
			name:    "deploy error",
			code:    "E401",
			wantMsg: "Deploy target not configured",
			wantCat: CategoryDeploy,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "file %q not found", "main.go")
	if err.Message != `file "main.go" not found` {
		t.Errorf("Message = %q, want %q", err.Message, `file "main.go" not found`)
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q, want %q", err.Category, CategoryCLI)
	}
}

func TestSiteError_Error(t *testing.T) {
	err := New("E001")
	got := err.Error()
	want := "E001: Unbalanced collector stack"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	// Without code
	err2 := &SiteError{Message: "test error"}
	if err2.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", err2.Error(), "test error")
	}
}

func TestSiteError_WithLocation(t *testing.T) {
	err := New("E001").WithLocation("app.go", 5, 14)

	if err.Location == nil {
		t.Fatal("Location is nil")
	}
	if err.Location.File != "app.go" {
		t.Errorf("Location.File = %q, want %q", err.Location.File, "app.go")
	}
	if err.Location.Line != 5 {
		t.Errorf("Location.Line = %d, want %d", err.Location.Line, 5)
	}
	if err.Location.Column != 14 {
		t.Errorf("Location.Column = %d, want %d", err.Location.Column, 14)
	}
}

func TestSiteError_Wrap(t *testing.T) {
	inner := New("E002")
	outer := New("E001").Wrap(inner)

	if outer.Wrapped != inner {
		t.Error("Wrapped error mismatch")
	}
	if outer.Unwrap() != inner {
		t.Error("Unwrap() should return wrapped error")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E001") != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	se := New("E001")
	if FromError(se, "E002") != se {
		t.Error("FromError should return SiteError as-is")
	}

	stdErr := &testError{msg: "test error"}
	result := FromError(stdErr, "E001")
	if result.Wrapped != stdErr {
		t.Error("Standard error should be wrapped")
	}
}

type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}

func TestLocation_String(t *testing.T) {
	tests := []struct {
		name string
		loc  *Location
		want string
	}{
		{
			name: "nil location",
			loc:  nil,
			want: "",
		},
		{
			name: "with column",
			loc:  &Location{File: "app.go", Line: 10, Column: 5},
			want: "app.go:10:5",
		},
		{
			name: "without column",
			loc:  &Location{File: "app.go", Line: 10, Column: 0},
			want: "app.go:10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.loc.String()
			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E001").
		WithLocation("app.go", 5, 14).
		WithSuggestion("Use reactive.WithCollector instead of manual Push/Pop").
		WithExample("reactive.WithCollector(col, func() { ... })")

	formatted := err.Format()

	if !strings.Contains(formatted, "ERROR E001: Unbalanced collector stack") {
		t.Errorf("Format missing header: %q", formatted)
	}
	if !strings.Contains(formatted, "at app.go:5:14") {
		t.Error("Format should contain location")
	}
	if !strings.Contains(formatted, "Hint:") {
		t.Error("Format should contain hint")
	}
	if !strings.Contains(formatted, "Example:") {
		t.Error("Format should contain example")
	}
	if !strings.Contains(formatted, "Learn more:") {
		t.Error("Format should contain doc URL")
	}
}

func TestFormatShowsCause(t *testing.T) {
	DisableColors()
	defer EnableColors()

	wrapped := &testError{msg: "yaml: line 3: could not find expected ':'"}
	formatted := New("E102").Wrap(wrapped).Format()

	if !strings.Contains(formatted, "caused by: "+wrapped.msg) {
		t.Errorf("Format missing cause: %q", formatted)
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E001").WithLocation("app.go", 10, 5)
	compact := err.FormatCompact()

	want := "app.go:10:5: E001: Unbalanced collector stack"
	if compact != want {
		t.Errorf("FormatCompact() = %q, want %q", compact, want)
	}
}

func TestGetAllCodes(t *testing.T) {
	codes := GetAllCodes()
	if len(codes) == 0 {
		t.Error("GetAllCodes() should return codes")
	}

	found := false
	for _, code := range codes {
		if code == "E001" {
			found = true
			break
		}
	}
	if !found {
		t.Error("E001 should be in the codes list")
	}
}

func TestGetTemplate(t *testing.T) {
	template, ok := GetTemplate("E001")
	if !ok {
		t.Error("E001 should exist")
	}
	if template.Message != "Unbalanced collector stack" {
		t.Error("Template message mismatch")
	}

	_, ok = GetTemplate("E999")
	if ok {
		t.Error("E999 should not exist")
	}
}

func TestRegister(t *testing.T) {
	Register("E999", ErrorTemplate{
		Category: CategoryRuntime,
		Message:  "Custom test error",
		Detail:   "This is a test error",
		DocURL:   "https://test.dev/E999",
	})

	err := New("E999")
	if err.Message != "Custom test error" {
		t.Errorf("Message = %q, want %q", err.Message, "Custom test error")
	}

	delete(registry, "E999")
}

func TestWrapText(t *testing.T) {
	got := wrapText("short text", 100)
	if len(got) != 1 || got[0] != "short text" {
		t.Errorf("wrapText short text: got %v", got)
	}

	got = wrapText("this is a longer text that should be wrapped", 20)
	if len(got) != 3 {
		t.Errorf("wrapText long text: expected 3 lines, got %d: %v", len(got), got)
	}

	got = wrapText("", 10)
	if len(got) != 0 {
		t.Errorf("wrapText empty: expected empty, got %v", got)
	}
}

func TestPaint(t *testing.T) {
	EnableColors()
	if got := paint(ansiRed, "test"); got != ansiRed+"test"+ansiReset {
		t.Errorf("paint with colors = %q", got)
	}

	DisableColors()
	if got := paint(ansiRed, "test"); got != "test" {
		t.Errorf("paint without colors = %q", got)
	}
	EnableColors()
}
