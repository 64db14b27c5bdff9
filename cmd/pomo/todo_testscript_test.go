package main

import (
	"testing"

	"github.com/pomodoro-cli/pomo/internal/testsupport"
	"github.com/rogpeppe/go-internal/testscript"
)

func TestTodoScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/todo",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"envset": testsupport.CmdEnvSet,
			"todoid": testsupport.CmdTodoID,
		},
	})
}

func TestStartScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/start",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
	})
}
