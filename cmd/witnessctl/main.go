// Command witnessctl drives a witness backend from the terminal using the
// same client and view logic as the console.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"witnessconsole/internal/api"
	"witnessconsole/internal/config"
	"witnessconsole/internal/viewstate"
	"witnessconsole/internal/views"
)

const usage = `usage: witnessctl <command> [flags] [args]

commands:
  ping                      check the backend is up
  stats                     print backend statistics
  list    [-status -q -sort -dir]
  gallery [-page -limit -tech -status -perception -failed]
  detail  <id>
  search  <query>
  submit  [-single -format -timeout -delay -x -y -ua] <url>...
  delete  <id>
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()
	cfg.App.Env = "dev"
	config.SetupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := api.NewClient("witnessctl", cfg.API.BaseURL, cfg.API.TimeoutSec)
	if err := run(ctx, client, os.Args[1], os.Args[2:], os.Stdout); err != nil {
		var fe *views.FormError
		if errors.As(err, &fe) {
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		log.Fatal().Err(err).Str("command", os.Args[1]).Msg("command failed")
	}
}

func run(ctx context.Context, c *api.Client, cmd string, args []string, out io.Writer) error {
	switch cmd {
	case "ping":
		body, err := c.Ping(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, strings.Trim(strings.TrimSpace(body), `"`))
		return nil

	case "stats":
		s, err := c.Statistics(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, s)

	case "list":
		fs := flag.NewFlagSet("list", flag.ContinueOnError)
		status := fs.String("status", "all", "all, success or error")
		q := fs.String("q", "", "url or title contains")
		sortCol := fs.String("sort", "", "column to sort by")
		dir := fs.String("dir", "asc", "asc or desc")
		if err := fs.Parse(args); err != nil {
			return &views.FormError{Field: "flags", Message: err.Error()}
		}

		rows, err := c.List(ctx)
		if err != nil {
			return err
		}
		view := viewstate.DecodeTable(url.Values{
			"status": {*status}, "q": {*q}, "sort": {*sortCol}, "dir": {*dir},
		})
		return printJSON(out, viewstate.ApplyTable(rows, view))

	case "gallery":
		fs := flag.NewFlagSet("gallery", flag.ContinueOnError)
		page := fs.Int("page", 1, "page number")
		limit := fs.Int("limit", viewstate.DefaultLimit, "page size")
		tech := fs.String("tech", "", "comma separated technologies")
		status := fs.String("status", "", "comma separated response codes")
		perception := fs.Bool("perception", false, "group by perception hash")
		failed := fs.Bool("failed", true, "include failed probes")
		if err := fs.Parse(args); err != nil {
			return &views.FormError{Field: "flags", Message: err.Error()}
		}

		state := viewstate.DecodeGallery(url.Values{
			"page":         {strconv.Itoa(*page)},
			"limit":        {strconv.Itoa(*limit)},
			"technologies": {*tech},
			"status":       {*status},
			"perception":   {strconv.FormatBool(*perception)},
			"failed":       {strconv.FormatBool(*failed)},
		})
		g, err := c.Gallery(ctx, state.Query())
		if err != nil {
			return err
		}
		return printJSON(out, map[string]any{
			"results":    g.Results,
			"pagination": viewstate.NewPagination(state.Page, state.Limit, g.TotalCount),
		})

	case "detail":
		if len(args) != 1 {
			return &views.FormError{Field: "id", Message: "detail takes exactly one id"}
		}
		d, err := c.Detail(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(out, d)

	case "search":
		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			return &views.FormError{Field: "query", Message: "search query is required"}
		}
		hits, err := c.Search(ctx, query)
		if err != nil {
			return err
		}
		return printJSON(out, hits)

	case "submit":
		return submit(ctx, c, args, out)

	case "delete":
		if len(args) != 1 {
			return &views.FormError{Field: "id", Message: "delete takes exactly one id"}
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return &views.FormError{Field: "id", Message: "id must be a number"}
		}
		msg, err := c.Delete(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, msg)
		return nil
	}

	return &views.FormError{Field: "command", Message: fmt.Sprintf("unknown command %q", cmd)}
}

func submit(ctx context.Context, c *api.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("submit", flag.ContinueOnError)
	single := fs.Bool("single", false, "probe one url and wait for the result")
	format := fs.String("format", views.DefaultFormat, "jpeg or png")
	timeout := fs.Int("timeout", views.DefaultTimeout, "page timeout in seconds")
	delay := fs.Int("delay", views.DefaultDelay, "seconds to wait before the screenshot")
	x := fs.Int("x", views.DefaultWindowX, "window width")
	y := fs.Int("y", views.DefaultWindowY, "window height")
	ua := fs.String("ua", views.DefaultUserAgent, "user agent")
	if err := fs.Parse(args); err != nil {
		return &views.FormError{Field: "flags", Message: err.Error()}
	}

	form := views.SubmitForm{
		List:   fs.Args(),
		Single: *single,
		Options: api.SubmitOptions{
			X: *x, Y: *y, UserAgent: *ua, Timeout: *timeout, Delay: *delay, Format: *format,
		},
	}
	urls, err := form.Validate()
	if err != nil {
		return err
	}

	if form.Single {
		d, err := c.SubmitSingle(ctx, api.SubmitSingleRequest{URL: urls[0], Options: &form.Options})
		if err != nil {
			return err
		}
		return printJSON(out, d)
	}

	msg, err := c.Submit(ctx, api.SubmitRequest{URLs: urls, Options: &form.Options})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, msg)
	return nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
