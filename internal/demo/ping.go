package demo

import "context"

var ping = Demo{
	Name:    "ping",
	Title:   "Ping",
	Summary: "Validate the API key with users/ping.",
	Run:     runPing,
}

func runPing(ctx context.Context, env *Env, _ Params, rep *Report) error {
	pong, err := env.Client.Ping(ctx)
	if err != nil {
		return err
	}
	rep.Linef("vendor answered %q", pong)
	return nil
}
