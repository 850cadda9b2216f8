// Copyright
// SPDX-License-Identifier: MIT
// editpad: growable text-edit overlay panels for quick snippet edits in the terminal
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	cfg "editpad/internal/config"
	"editpad/internal/history"
	"editpad/internal/snippet"
	appTUI "editpad/internal/tui"
	"editpad/internal/tui/util"
)

const Version = "0.3.0"

const (
	stateDirName   = ".editpad"
	configFileName = "config.json"
)

func main() {
	if len(os.Args) < 2 {
		cmdEdit(nil)
		return
	}
	switch os.Args[1] {
	case "help", "-h", "--help":
		usage()
	case "version", "-v", "--version":
		fmt.Println("editpad", Version)
	case "edit":
		cmdEdit(os.Args[2:])
	case "history":
		cmdHistory(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println(`editpad — edit snippet values in growable overlay panels

Usage:
  editpad [edit] [-f file] [-no-color]   open the snippet editor
  editpad history [-n N]                 show recent commits
  editpad version                        print version

State lives in ./` + stateDirName + ` (config.json, history.json).`)
}

func stateDir() string { return stateDirName }

func cmdEdit(args []string) {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	file := fs.String("f", "", "snippet file (default from config)")
	noColor := fs.Bool("no-color", false, "disable colored output")
	_ = fs.Parse(args)

	conf, err := cfg.Load(filepath.Join(stateDir(), configFileName))
	if err != nil {
		fatal(err)
	}
	path := conf.SnippetFile
	if *file != "" {
		path = *file
	}
	store, err := snippet.Load(path)
	if err != nil {
		fatal(err)
	}
	nc := util.NoColor(*noColor || conf.NoColor)
	if err := appTUI.Run(path, store, stateDir(), conf.HistoryLimit, nc); err != nil {
		fatal(err)
	}
}

func cmdHistory(args []string) {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	n := fs.Int("n", 10, "number of entries to show")
	_ = fs.Parse(args)

	recs, err := history.Load(stateDir())
	if err != nil {
		fatal(err)
	}
	shown := 0
	for i := len(recs) - 1; i >= 0 && shown < *n; i-- {
		r := recs[i]
		fmt.Printf("%s  %s\n", r.When, r.Key)
		fmt.Printf("  - %s\n", util.Ellipsize(util.FirstLine(r.Before), 70))
		fmt.Printf("  + %s\n", util.Ellipsize(util.FirstLine(r.After), 70))
		shown++
	}
	if shown == 0 {
		fmt.Println("No history yet.")
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "editpad:", err)
	os.Exit(1)
}
