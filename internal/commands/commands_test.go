package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"taskdeck/internal/commands"
	"taskdeck/internal/config"
	"taskdeck/internal/exitcode"
	"taskdeck/internal/service"
	"taskdeck/internal/testutil"
)

// runCommand is a helper to run a command with FakeService.
func runCommand(t *testing.T, cmd commands.Command, svc *testutil.FakeService, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()
	return runCommandWithInput(t, cmd, svc, args, quiet, "")
}

func runCommandWithInput(t *testing.T, cmd commands.Command, svc *testutil.FakeService, args []string, quiet bool, input string) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := &config.Config{
		Dir:   t.TempDir(),
		Quiet: quiet,
	}

	var s service.Service
	if svc != nil {
		s = svc
	}

	ctx := context.Background()
	code = cmd.Run(ctx, cfg, s, args, commands.IO{
		In:     strings.NewReader(input),
		Out:    &outBuf,
		ErrOut: &errBuf,
	})
	return outBuf.String(), errBuf.String(), code
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "taskdeck 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	reg := commands.NewRegistry()
	if err := reg.Register(&commands.ListCmd{}); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(&commands.AddCmd{}); err != nil {
		t.Fatal(err)
	}
	cmd := commands.NewHelpCmd(reg)

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.HasPrefix(stdout, "Usage:\n") {
		t.Errorf("help output should start with 'Usage:', got %q", stdout)
	}
	// Sorted by name: add before list
	addAt := strings.Index(stdout, "taskdeck add <title...>")
	listAt := strings.Index(stdout, "taskdeck list [--pending]")
	if addAt < 0 || listAt < 0 || addAt > listAt {
		t.Errorf("expected add then list in help output, got %q", stdout)
	}
	assert.Contains(t, stdout, "--base-url <url>")
}

func TestHelpCommand_Golden(t *testing.T) {
	cmd, ok := commands.DefaultRegistry.Find("help")
	if !ok {
		t.Fatal("help is not registered")
	}

	stdout, _, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	testutil.GoldenString(t, "help", stdout)
}

// Tests for the registry
func TestRegistry_DuplicateNames(t *testing.T) {
	reg := commands.NewRegistry()
	assert.NoError(t, reg.Register(&commands.RmCmd{}))

	err := reg.Register(&commands.RmCmd{})
	assert.EqualError(t, err, "command already registered: rm")

	reg2 := commands.NewRegistry()
	assert.NoError(t, reg2.Register(&commands.AddCmd{}))
	err = reg2.Register(&aliasClash{})
	assert.EqualError(t, err, "command alias already registered: create")

	cmd, ok := reg2.Find("create")
	assert.True(t, ok)
	assert.Equal(t, "add", cmd.Name())
	_, ok = reg2.Find("clash")
	assert.False(t, ok, "a rejected command is not partially registered")
}

type aliasClash struct{ commands.VersionCmd }

func (c *aliasClash) Name() string      { return "clash" }
func (c *aliasClash) Aliases() []string { return []string{"create"} }

func TestDefaultRegistry(t *testing.T) {
	for _, name := range []string{"ui", "list", "add", "toggle", "rm", "help", "version"} {
		if _, ok := commands.DefaultRegistry.Find(name); !ok {
			t.Errorf("expected %q to be registered", name)
		}
	}
}

// Tests for list command
func TestListCommand_WithTasks(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", false)
	svc.AddTask("Buy eggs", true)
	svc.AddTask("Call mom", false)

	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}

	expected := "   1  [ ] Buy milk\n   2  [x] Buy eggs\n   3  [ ] Call mom\n\n2 pending, 1 completed, 3 total\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_PendingOnly(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", false)
	svc.AddTask("Buy eggs", true)

	cmd := &commands.ListCmd{}
	cmd.SetPendingOnly(true)
	stdout, _, code := runCommand(t, cmd, svc, nil, false)

	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "   1  [ ] Buy milk\n\n1 pending, 1 completed, 2 total\n", stdout)
}

func TestListCommand_Empty(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "no tasks yet\n" {
		t.Errorf("expected %q, got %q", "no tasks yet\n", stdout)
	}
}

func TestListCommand_EmptyQuiet(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.ListCmd{}
	stdout, _, code := runCommand(t, cmd, svc, nil, true)

	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stdout)
}

func TestListCommand_BackendError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ListTasksErr = service.NewOpError(service.OpList, errors.New("status 502"))

	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, nil, false)

	assert.Equal(t, exitcode.BackendError, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "error: Failed to fetch tasks. Please check if the backend is running.\n", stderr)
}

func TestListCommand_UnexpectedArg(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.ListCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"work"}, false)

	assert.Equal(t, exitcode.UserError, code)
	assert.Equal(t, "error: unexpected argument: work\n", stderr)
	assert.Equal(t, 0, svc.Calls())
}

// Tests for add command
func TestAddCommand_Success(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.AddCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"Buy", "milk"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "   1  [ ] Buy milk\n" {
		t.Errorf("expected task line, got %q", stdout)
	}

	tasks := svc.Tasks()
	if len(tasks) != 1 || tasks[0].Title != "Buy milk" || tasks[0].Completed {
		t.Errorf("unexpected server state: %+v", tasks)
	}
}

func TestAddCommand_TrimsTitle(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.AddCmd{}
	_, _, code := runCommand(t, cmd, svc, []string{"  Buy milk  "}, false)

	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "Buy milk", svc.Tasks()[0].Title)
}

func TestAddCommand_Quiet(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.AddCmd{}
	stdout, _, code := runCommand(t, cmd, svc, []string{"Buy milk"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout in quiet mode, got %q", stdout)
	}
}

func TestAddCommand_NoTitle(t *testing.T) {
	for _, args := range [][]string{nil, {"   "}, {"", "\t"}} {
		svc := testutil.NewFakeService()

		cmd := &commands.AddCmd{}
		_, stderr, code := runCommand(t, cmd, svc, args, false)

		if code != exitcode.UserError {
			t.Errorf("%q: expected exit code %d, got %d", args, exitcode.UserError, code)
		}
		if stderr != "error: title required\n" {
			t.Errorf("%q: expected title required error, got %q", args, stderr)
		}
		if svc.Calls() != 0 {
			t.Errorf("%q: expected no backend calls, got %d", args, svc.Calls())
		}
	}
}

func TestAddCommand_BackendError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.CreateTaskErr = service.NewOpError(service.OpCreate, errors.New("status 500"))

	cmd := &commands.AddCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"Buy milk"}, false)

	assert.Equal(t, exitcode.BackendError, code)
	assert.Equal(t, "error: Failed to create task. Please try again.\n", stderr)
}

func TestAddCommand_UnclassifiedError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.CreateTaskErr = errors.New("boom")

	cmd := &commands.AddCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"Buy milk"}, false)

	assert.Equal(t, exitcode.BackendError, code)
	assert.Equal(t, "error: backend error: boom\n", stderr)
}

// Tests for toggle command
func TestToggleCommand_Success(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", false)
	svc.AddTask("Walk dog", false)

	cmd := &commands.ToggleCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"2"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "   2  [x] Walk dog\n" {
		t.Errorf("expected toggled task, got %q", stdout)
	}

	// Toggling again restores the original value
	stdout, _, _ = runCommand(t, cmd, svc, []string{"2"}, false)
	if stdout != "   2  [ ] Walk dog\n" {
		t.Errorf("expected task back to pending, got %q", stdout)
	}
	assert.False(t, svc.Tasks()[0].Completed)
}

func TestToggleCommand_NoID(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.ToggleCmd{}
	_, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task id required\n" {
		t.Errorf("expected task id required error, got %q", stderr)
	}
}

func TestToggleCommand_InvalidID(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"abc"}, "error: invalid task id: abc\n"},
		{[]string{"0"}, "error: invalid task id: 0\n"},
		{[]string{"-3"}, "error: invalid task id: -3\n"},
		{[]string{"1", "2"}, "error: too many arguments: expected a single task id\n"},
	}

	for _, tt := range tests {
		svc := testutil.NewFakeService()
		cmd := &commands.ToggleCmd{}
		_, stderr, code := runCommand(t, cmd, svc, tt.args, false)

		assert.Equal(t, exitcode.UserError, code, tt.args)
		assert.Equal(t, tt.want, stderr, tt.args)
		assert.Equal(t, 0, svc.Calls(), tt.args)
	}
}

func TestToggleCommand_UnknownID(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", false)

	cmd := &commands.ToggleCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"9"}, false)

	assert.Equal(t, exitcode.UserError, code)
	assert.Equal(t, "error: task not found: 9\n", stderr)
	assert.Equal(t, 0, svc.UpdateCalls)
}

func TestToggleCommand_BackendError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", false)
	svc.SetTaskCompletionErr = service.NewOpError(service.OpUpdate, errors.New("status 500"))

	cmd := &commands.ToggleCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"1"}, false)

	assert.Equal(t, exitcode.BackendError, code)
	assert.Equal(t, "error: Failed to update task. Please try again.\n", stderr)
	assert.False(t, svc.Tasks()[0].Completed)
}

// Tests for rm command
func TestRmCommand_Confirmed(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", false)
	svc.AddTask("Walk dog", false)
	svc.AddTask("Call mom", false)

	cmd := &commands.RmCmd{}
	stdout, stderr, code := runCommandWithInput(t, cmd, svc, []string{"2"}, false, "y\n")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected ok, got %q", stdout)
	}
	if !strings.HasSuffix(stderr, "Are you sure you want to delete this task? [y/N] ") {
		t.Errorf("expected confirmation prompt, got %q", stderr)
	}

	tasks := svc.Tasks()
	if len(tasks) != 2 || tasks[0].Title != "Buy milk" || tasks[1].Title != "Call mom" {
		t.Errorf("unexpected server state: %+v", tasks)
	}
}

func TestRmCommand_Declined(t *testing.T) {
	for _, answer := range []string{"n\n", "\n", "", "nope\n"} {
		svc := testutil.NewFakeService()
		svc.AddTask("Buy milk", false)

		cmd := &commands.RmCmd{}
		stdout, _, code := runCommandWithInput(t, cmd, svc, []string{"1"}, false, answer)

		assert.Equal(t, exitcode.Success, code, answer)
		assert.Equal(t, "cancelled\n", stdout, answer)
		assert.Equal(t, 0, svc.DeleteCalls, answer)
		assert.Len(t, svc.Tasks(), 1, answer)
	}
}

func TestRmCommand_Yes(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", false)

	cmd := &commands.RmCmd{}
	cmd.SetYes(true)
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"1"}, false)

	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "ok\n", stdout)
	assert.Empty(t, stderr, "no prompt with --yes")
	assert.Empty(t, svc.Tasks())
}

func TestRmCommand_NoID(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.RmCmd{}
	_, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task id required\n" {
		t.Errorf("expected task id required error, got %q", stderr)
	}
}

func TestRmCommand_UnknownID(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", false)

	cmd := &commands.RmCmd{}
	cmd.SetYes(true)
	_, stderr, code := runCommand(t, cmd, svc, []string{"7"}, false)

	assert.Equal(t, exitcode.UserError, code)
	assert.Equal(t, "error: task not found: 7\n", stderr)
	assert.Equal(t, 0, svc.DeleteCalls)
}

func TestRmCommand_BackendError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", false)
	svc.DeleteTaskErr = service.NewOpError(service.OpDelete, errors.New("status 500"))

	cmd := &commands.RmCmd{}
	cmd.SetYes(true)
	_, stderr, code := runCommand(t, cmd, svc, []string{"1"}, false)

	assert.Equal(t, exitcode.BackendError, code)
	assert.Equal(t, "error: Failed to delete task. Please try again.\n", stderr)
	assert.Len(t, svc.Tasks(), 1)
}

// Tests for ui command
func TestUICommand_UnexpectedArg(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.UICmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"now"}, false)

	assert.Equal(t, exitcode.UserError, code)
	assert.Equal(t, "error: unexpected argument: now\n", stderr)
	assert.True(t, cmd.Interactive())
}
