// Replay converts JSON log lines back into pretty terminal output. It
// reads the line-delimited records produced by the JSON renderer on
// stdin and re-emits them through the pretty renderer, grouping loggers
// by the id field of each record.
//
// Usage:
//
//	go run replay.go -level info < app.jsonl
//
// Entries are re-stamped at replay time; the original timestamp is kept
// as a logged_at metadata field.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/angeloszaimis/duolog/pkg/logger"
)

func main() {
	level := flag.String("level", "debug", "minimum level to replay")
	flag.Parse()

	loggers := map[string]*logger.Logger{}
	loggerFor := func(id string) *logger.Logger {
		if log, ok := loggers[id]; ok {
			return log
		}
		log := logger.New(logger.Options{Level: *level, Format: logger.FormatPretty, ID: id})
		loggers[id] = log
		return log
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var record map[string]any
		if err := json.Unmarshal(raw, &record); err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %v\n", lineNo, err)
			continue
		}

		replay(loggerFor, record)
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read stdin: %v\n", err)
		os.Exit(1)
	}
}

func replay(loggerFor func(string) *logger.Logger, record map[string]any) {
	level, _ := record["level"].(string)
	message, _ := record["message"].(string)
	id, _ := record["id"].(string)

	meta := logger.Metadata{}
	for k, v := range record {
		switch k {
		case "level", "message", "id":
			continue
		case "timestamp":
			meta["logged_at"] = v
		default:
			meta[k] = v
		}
	}

	log := loggerFor(id)
	switch logger.ParseLevel(level) {
	case logger.LevelDebug:
		log.Debug(message, meta)
	case logger.LevelInfo:
		log.Info(message, meta)
	case logger.LevelSuccess:
		log.Success(message, meta)
	case logger.LevelWarn:
		log.Warn(message, meta)
	case logger.LevelError:
		log.Error(message, meta)
	}
}
