package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"warbler/internal/cmdlog"
	"warbler/internal/config"
	"warbler/internal/metrics"
	"warbler/internal/theme"
)

func main() {
	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	var err error
	switch cmd {
	case "init":
		err = cmdlog.Run(cmd, cmdInit)
	case "register":
		err = cmdlog.Run(cmd, cmdRegister)
	case "login":
		err = cmdlog.Run(cmd, cmdLogin)
	case "logout":
		err = cmdlog.Run(cmd, cmdLogout)
	case "whoami":
		err = cmdlog.Run(cmd, cmdWhoami)
	case "feed":
		err = cmdlog.Run(cmd, cmdFeed)
	case "compose":
		err = cmdlog.Run(cmd, cmdCompose)
	case "profile":
		err = cmdlog.Run(cmd, cmdProfile)
	case "follow":
		err = cmdlog.Run(cmd, cmdFollow)
	case "like":
		err = cmdlog.Run(cmd, func() error { return cmdToggle("like") })
	case "retweet":
		err = cmdlog.Run(cmd, func() error { return cmdToggle("retweet") })
	case "bookmark":
		err = cmdlog.Run(cmd, func() error { return cmdToggle("bookmark") })
	case "comments":
		err = cmdlog.Run(cmd, cmdComments)
	case "search":
		err = cmdlog.Run(cmd, cmdSearch)
	case "trends":
		err = cmdlog.Run(cmd, cmdTrends)
	case "recommended":
		err = cmdlog.Run(cmd, cmdRecommended)
	case "notifications":
		err = cmdlog.Run(cmd, cmdNotifications)
	case "react":
		err = cmdlog.Run(cmd, cmdReact)
	case "events":
		err = cmdlog.Run(cmd, cmdEvents)
	case "theme":
		err = cmdlog.Run(cmd, cmdTheme)
	default:
		printHelp()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func printHelp() {
	theme.PrintBanner()
	fmt.Println("Usage: warbler <command> [options]")
	fmt.Println("Commands:")
	fmt.Println("  init           Create a config file at ./warbler.yaml")
	fmt.Println("  register       Create an account")
	fmt.Println("  login          Log in and store the token")
	fmt.Println("  logout         Clear the stored token")
	fmt.Println("  whoami         Show the current session")
	fmt.Println("  feed           Show the home feed")
	fmt.Println("  compose        Post a tweet")
	fmt.Println("  profile        Show a profile and its tabs")
	fmt.Println("  follow         Toggle following a user")
	fmt.Println("  like           Toggle a like on a tweet")
	fmt.Println("  retweet        Toggle a retweet")
	fmt.Println("  bookmark       Toggle a bookmark")
	fmt.Println("  comments       List or add comments on a tweet")
	fmt.Println("  search         Search users and tweets")
	fmt.Println("  trends         Show trending hashtags")
	fmt.Println("  recommended    Show recommended tweets")
	fmt.Println("  notifications  Show, watch, or mark notifications")
	fmt.Println("  react          React to a tweet with a captured frame")
	fmt.Println("  events         Show the local mutation history")
	fmt.Println("  theme          Toggle dark/light mode")
}

func cmdInit() error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	path := fs.String("path", "./warbler.yaml", "path to write config")
	_ = fs.Parse(os.Args[2:])
	cfg := config.Default()
	if err := config.Save(*path, cfg); err != nil {
		return err
	}
	abs, _ := filepath.Abs(*path)
	theme.PrintBanner()
	fmt.Println("Config written to:", abs)
	return nil
}

func cmdTheme() error {
	fs := flag.NewFlagSet("theme", flag.ExitOnError)
	cfgPath := fs.String("config", "./warbler.yaml", "config path")
	_ = fs.Parse(os.Args[2:])
	a, err := openApp(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	if a.theme.Toggle() {
		fmt.Println("Theme: dark")
	} else {
		fmt.Println("Theme: light")
	}
	return nil
}

func cmdWhoami() error {
	fs := flag.NewFlagSet("whoami", flag.ExitOnError)
	cfgPath := fs.String("config", "./warbler.yaml", "config path")
	_ = fs.Parse(os.Args[2:])
	a, err := openApp(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	metrics.StartServer(a.cfg.Metrics.Addr)
	ctx := context.Background()
	if err := a.session.Restore(ctx); err != nil {
		fmt.Println("Not logged in (stored token was rejected).")
		return nil
	}
	snap := a.session.Snapshot()
	if !snap.Authenticated {
		fmt.Println("Not logged in.")
		return nil
	}
	p := a.theme.Palette()
	fmt.Printf("%s %s\n", p.Handle.Render("@"+snap.User.Username), p.Muted.Render(snap.User.Email))
	fmt.Printf("%s followers, %s following\n",
		p.Accent.Render(fmt.Sprint(snap.User.FollowersCount)),
		p.Accent.Render(fmt.Sprint(snap.User.FollowingCount)))
	return nil
}
