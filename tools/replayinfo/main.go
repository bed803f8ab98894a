package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"randroom/internal/infrastructure/storage"
)

func main() {
	if len(os.Args) < 3 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "info":
		if err := run(os.Args[2], printInfo); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	case "actions":
		if err := run(os.Args[2], printActions); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	case "format":
		ts, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			fmt.Printf("Invalid timestamp: %v\n", err)
			return
		}
		fmt.Println(time.Unix(ts, 0).Format(time.RFC3339))
	default:
		printHelp()
	}
}

func run(path string, print func(io.Writer, *storage.Replay)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := storage.ReadReplay(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	print(os.Stdout, r)
	return nil
}

// printInfo печатает заголовок и число событий каждого вида.
func printInfo(w io.Writer, r *storage.Replay) {
	var commands, targets, menus int
	for _, ev := range r.Events {
		switch ev.Kind {
		case storage.EventCommand:
			commands++
		case storage.EventTarget:
			targets++
		case storage.EventMenu:
			menus++
		}
	}
	fmt.Fprintf(w, "seed:     %d\n", r.Seed)
	fmt.Fprintf(w, "recorded: %s\n", time.Unix(r.Timestamp, 0).Format(time.RFC3339))
	fmt.Fprintf(w, "events:   %d (commands %d, targets %d, menus %d)\n",
		len(r.Events), commands, targets, menus)
}

// printActions печатает частоту команд, самые частые первыми.
func printActions(w io.Writer, r *storage.Replay) {
	counts := make(map[string]int)
	for _, ev := range r.Events {
		if ev.Kind == storage.EventCommand {
			counts[ev.Action.String()]++
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		fmt.Fprintf(w, "%-10s %d\n", name, counts[name])
	}
}

func printHelp() {
	fmt.Println(`Replay Info - просмотр файлов ` + storage.ReplayExt + `
Commands:
  info <file>            - seed, время записи и число событий
  actions <file>         - частота команд игрока
  format <timestamp>     - преобразовать Unix время в читаемый формат`)
}
