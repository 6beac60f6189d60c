package console

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charityfund/charity/db"
	"github.com/charityfund/charity/internal/config"
	"github.com/charityfund/charity/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	gdb, err := db.ConnectDatabase(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "console.db"),
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })

	require.NoError(t, db.MigrateDatabase(gdb))

	return store.New(gdb, zap.NewNop())
}

// run feeds the script lines to a console and returns everything it printed.
func run(t *testing.T, s *store.Store, lines ...string) string {
	t.Helper()

	var out bytes.Buffer
	script := strings.Join(lines, "\n") + "\n"

	c := New(s, strings.NewReader(script), &out, zap.NewNop())
	require.NoError(t, c.Run(context.Background()))

	return out.String()
}

func TestRun_Exit(t *testing.T) {
	s := newTestStore(t)

	for _, word := range []string{"exit", "EXIT", "  Exit  "} {
		out := run(t, s, word, "0")
		assert.Contains(t, out, "Select an option (enter 'exit' to close):")
		assert.Contains(t, out, "21 - Show project totals")
		assert.NotContains(t, out, "List of Donors:", "menu must stop at %q", word)
	}
}

func TestRun_EOFEndsSession(t *testing.T) {
	s := newTestStore(t)

	var out bytes.Buffer
	c := New(s, strings.NewReader(""), &out, nil)
	require.NoError(t, c.Run(context.Background()))

	assert.Equal(t, 1, strings.Count(out.String(), "Select an option"))
}

func TestRun_EOFMidPrompt(t *testing.T) {
	s := newTestStore(t)

	run(t, s, "4", "Alice")

	donors, err := s.ListDonors(context.Background())
	require.NoError(t, err)
	assert.Empty(t, donors)
}

func TestRun_LastLineWithoutNewline(t *testing.T) {
	s := newTestStore(t)

	var out bytes.Buffer
	c := New(s, strings.NewReader("9"), &out, nil)
	require.NoError(t, c.Run(context.Background()))

	assert.Contains(t, out.String(), "Total Donations: 0.00")
}

func TestRun_InvalidOption(t *testing.T) {
	s := newTestStore(t)

	out := run(t, s, "abc", "22", "-1", "", "9", "exit")

	assert.Equal(t, 4, strings.Count(out, "Invalid option."))
	assert.Contains(t, out, "Total Donations: 0.00")
}

func TestRun_CancelledContext(t *testing.T) {
	s := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := New(s, strings.NewReader("0\n"), &out, nil).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestRun_DonorLifecycle(t *testing.T) {
	s := newTestStore(t)

	out := run(t, s,
		"4", "Alice", "alice@example.org", "555-0100",
		"6", "Shelter", "Winter shelter", "1000.00",
		"5", "50.00", "1", "1",
		"9",
		"0",
		"1",
		"14", "1",
		"9",
		"exit",
	)

	assert.Contains(t, out, "Donor added successfully! (ID: 1)")
	assert.Contains(t, out, "Project added successfully! (ID: 1)")
	assert.Contains(t, out, "Donation added successfully! (ID: 1)")
	assert.Contains(t, out, "Total Donations: 50.00")
	assert.Contains(t, out, "ID: 1, Name: Alice, Email: alice@example.org, Phone: 555-0100")
	assert.Contains(t, out, "  Donation ID: 1, Amount: 50.00")
	assert.Contains(t, out, "  Donor: Alice, Project: Shelter")
	assert.Contains(t, out, "Donor deleted successfully!")
	assert.Contains(t, out, "Total Donations: 0.00")

	donations, err := s.ListDonations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, donations)
}

func TestRun_VolunteerProjects(t *testing.T) {
	s := newTestStore(t)

	out := run(t, s,
		"7", "Vera", "vera@example.org", "555-0102",
		"6", "School", "Books", "250",
		"8", "1", "1", "6",
		"3",
		"2",
		"18",
		"19", "1", "", "", "9",
		"21",
		"20", "1",
		"18",
		"exit",
	)

	assert.Contains(t, out, "Volunteer Project added successfully! (ID: 1)")
	assert.Contains(t, out, "  Project: School, Hours Worked: 6")
	assert.Contains(t, out, "    Volunteer: Vera, Hours Worked: 6")
	assert.Contains(t, out, "ID: 1, Volunteer: Vera (ID: 1), Project: School (ID: 1), Hours Worked: 6")
	assert.Contains(t, out, "Volunteer Project updated successfully!")
	assert.Contains(t, out, "ID: 1, Name: School, Goal: 250.00, Raised: 0.00, Remaining: 250.00")
	assert.Contains(t, out, "  Donations: 0, Volunteers: 1, Hours Worked: 9")
	assert.Contains(t, out, "Volunteer Project deleted successfully!")
	assert.Contains(t, out, "No volunteer projects found.")
}

func TestRun_UpdateKeepsBlankFields(t *testing.T) {
	s := newTestStore(t)

	out := run(t, s,
		"4", "Alice", "alice@example.org", "555-0100",
		"10", "1", "", "alice@new.example", "",
		"0",
		"exit",
	)

	assert.Contains(t, out, "Enter new Name (leave empty to keep current):")
	assert.Contains(t, out, "Donor updated successfully!")
	assert.Contains(t, out, "ID: 1, Name: Alice, Email: alice@new.example, Phone: 555-0100")
}

func TestRun_ErrorsAreNotFatal(t *testing.T) {
	s := newTestStore(t)

	out := run(t, s,
		"10", "7",
		"5", "1.005",
		"5", "abc",
		"6", "Shelter", "", "100",
		"5", "10", "7", "1",
		"4", "", "", "",
		"15", "x",
		"17", "3",
		"exit",
	)

	assert.Contains(t, out, "Donor not found.")
	assert.Equal(t, 2, strings.Count(out, "Invalid amount."))
	assert.Contains(t, out, "Donor 7 does not exist.")
	assert.Contains(t, out, "Name is required.")
	assert.Contains(t, out, "Invalid donation id.")
	assert.Contains(t, out, "Volunteer not found.")

	// the session kept going after every failure
	assert.Equal(t, 9, strings.Count(out, "Select an option"))
}

func TestRun_DanglingVolunteerLink(t *testing.T) {
	s := newTestStore(t)

	out := run(t, s,
		"7", "Vera", "", "",
		"7", "Walt", "", "",
		"6", "Shelter", "", "10",
		"8", "2", "1", "3",
		"8", "1", "1", "5",
		"17", "1",
		"2",
		"18",
		"20", "2",
		"18",
		"exit",
	)

	assert.Contains(t, out, "Volunteer deleted successfully!")
	assert.Equal(t, 2, strings.Count(out, "Volunteer 1 not found (volunteer project 2)."))
	assert.Contains(t, out, "Volunteer Project deleted successfully!")
	assert.Contains(t, out, "ID: 1, Volunteer: Walt (ID: 2), Project: Shelter (ID: 1), Hours Worked: 3")
	assert.NotContains(t, out, "No volunteer projects found.")
}

func TestMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&store.NotFoundError{Kind: store.KindVolunteerProject, ID: 2}, "Volunteer project not found."},
		{&store.NotFoundError{Kind: store.KindVolunteer, ID: 1, Link: 4}, "Volunteer 1 not found (volunteer project 4)."},
		{&store.ReferenceError{Kind: store.KindProject, ID: 9}, "Project 9 does not exist."},
		{&store.ValidationError{Field: "hours worked", Reason: "must not be negative"}, "Invalid hours worked."},
		{fmt.Errorf("wrapped: %w", &store.ValidationError{Field: "name", Reason: "is required"}), "Name is required."},
		{fmt.Errorf("%w: unknown kind", store.ErrValidation), "Invalid input."},
		{fmt.Errorf("disk full"), "Operation failed: disk full"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, message(tt.err))
	}
}

func TestTitleWords(t *testing.T) {
	assert.Equal(t, "Volunteer Project", titleWords("volunteer project"))
	assert.Equal(t, "Donor", titleWords("donor"))
}
