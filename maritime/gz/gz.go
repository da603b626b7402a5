// Package gz wraps the Gazebo command-line tools. The simulator is an
// opaque external process; everything here is argv construction plus
// subprocess plumbing.
package gz

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// serviceTimeoutMs is passed to gz service as its own request timeout;
// processTimeout bounds the whole subprocess.
const (
	serviceTimeoutMs = 5000
	processTimeout   = 10 * time.Second
)

// Runner executes an external command, returning its combined output.
// Tests substitute a fake to capture argv without a gz binary present.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func defaultRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Client invokes the gz binary for service calls, topic checks and
// simulator launches.
type Client struct {
	bin string
	run Runner
}

// NewClient returns a client driving the gz binary found on PATH.
func NewClient() *Client {
	return &Client{bin: "gz", run: defaultRunner}
}

// NewClientWithRunner returns a client whose subprocesses are executed
// by run. Used by tests.
func NewClientWithRunner(run Runner) *Client {
	return &Client{bin: "gz", run: run}
}

// LaunchArgs returns the argv (after the gz binary itself) for
// launching the simulator on a world file.
func LaunchArgs(worldFile string) []string {
	return []string{"sim", worldFile, "-v", "4"}
}

// ResourcePathEnv builds the GZ_SIM_RESOURCE_PATH entry that makes the
// bundled models visible to the simulator, prepending modelsDir to any
// existing value.
func ResourcePathEnv(modelsDir string) string {
	path := modelsDir
	if existing := os.Getenv("GZ_SIM_RESOURCE_PATH"); existing != "" {
		path = modelsDir + ":" + existing
	}
	return "GZ_SIM_RESOURCE_PATH=" + path
}

// LaunchCommand renders the full launch invocation as a shell-style
// string for logging and --dry-run output.
func (c *Client) LaunchCommand(worldFile, modelsDir string) string {
	return fmt.Sprintf("%s %s %s", ResourcePathEnv(modelsDir), c.bin, strings.Join(LaunchArgs(worldFile), " "))
}

// LaunchSim runs gz sim on the world file and blocks until the
// simulator exits. The child inherits stdout/stderr so the GUI's
// console output stays visible.
func (c *Client) LaunchSim(ctx context.Context, worldFile, modelsDir string) error {
	cmd := exec.CommandContext(ctx, c.bin, LaunchArgs(worldFile)...)
	cmd.Env = append(os.Environ(), ResourcePathEnv(modelsDir))
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// CreateEntity calls the world's entity factory service with a textual
// gz.msgs.EntityFactory request. The returned output is whatever gz
// printed, success or not.
func (c *Client) CreateEntity(ctx context.Context, world, request string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, processTimeout)
	defer cancel()
	return c.run(ctx, c.bin,
		"service",
		"-s", fmt.Sprintf("/world/%s/create", world),
		"--reqtype", "gz.msgs.EntityFactory",
		"--reptype", "gz.msgs.Boolean",
		"--timeout", fmt.Sprintf("%d", serviceTimeoutMs),
		"--req", request,
	)
}

// WorldRunning reports whether a simulator advertising the named world
// is reachable, by scanning the gz topic list for /world/<name>.
func (c *Client) WorldRunning(ctx context.Context, world string) bool {
	ctx, cancel := context.WithTimeout(ctx, processTimeout)
	defer cancel()
	out, err := c.run(ctx, c.bin, "topic", "-l")
	if err != nil {
		return false
	}
	prefix := fmt.Sprintf("/world/%s", world)
	for _, line := range strings.Split(string(out), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), prefix) {
			return true
		}
	}
	return false
}
