package models

import (
	"testing"
)

func TestCheckReport_Status(t *testing.T) {
	cases := []struct {
		name   string
		report CheckReport
		want   CheckStatus
	}{
		{
			name:   "clean run",
			report: CheckReport{Total: 2, Clean: 2},
			want:   StatusClean,
		},
		{
			name:   "missing only",
			report: CheckReport{Total: 2, Clean: 1, Missing: []SourceCode{{FileName: "a.sol"}}},
			want:   StatusMissing,
		},
		{
			name:   "diffs dominate missing",
			report: CheckReport{Total: 2, Missing: []SourceCode{{FileName: "a.sol"}}, Diffs: []Compared{{LocalFile: "b.sol"}}},
			want:   StatusDiffs,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.report.Status(); got != tc.want {
				t.Errorf("Status() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCheckStatus_ExitCode(t *testing.T) {
	cases := []struct {
		status CheckStatus
		want   int
	}{
		{StatusClean, 0},
		{StatusMissing, 1},
		{StatusDiffs, 2},
		{CheckStatus("unknown"), 3},
	}

	for _, tc := range cases {
		if got := tc.status.ExitCode(); got != tc.want {
			t.Errorf("ExitCode(%q) = %d, want %d", tc.status, got, tc.want)
		}
	}
}

func TestCheckReport_ComparedCount(t *testing.T) {
	report := CheckReport{
		Total:   5,
		Missing: []SourceCode{{FileName: "a.sol"}, {FileName: "b.sol"}},
	}
	if got := report.ComparedCount(); got != 3 {
		t.Errorf("ComparedCount() = %d, want 3", got)
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "output.format", Message: "must be 'human' or 'json'"}
	want := "output.format: must be 'human' or 'json'"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
