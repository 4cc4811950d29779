package logger_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	pkgerrors "github.com/pkg/errors"

	"github.com/angeloszaimis/duolog/pkg/logger"
)

var _ = Describe("Pretty renderer", func() {
	var buf bytes.Buffer

	BeforeEach(func() {
		buf.Reset()
	})

	newPretty := func(opts logger.Options) *logger.Logger {
		opts.Format = logger.FormatPretty
		opts.Output = &buf
		return logger.New(opts)
	}

	Describe("line layout", func() {
		It("should render timestamp, level, id and message in order", func() {
			log := newPretty(logger.Options{ID: "API"})
			log.Info("User logged in")

			Expect(buf.String()).To(MatchRegexp(
				`^\x1b\[90m\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}\x1b\[0m ` +
					`\x1b\[34mINFO \x1b\[0m \x1b\[1mAPI:\x1b\[0m User logged in\n$`))
		})

		It("should drop the timestamp segment when disabled", func() {
			log := newPretty(logger.Options{ID: "API", DisableTimestamp: true})
			log.Info("User logged in")

			Expect(buf.String()).To(Equal("\x1b[34mINFO \x1b[0m \x1b[1mAPI:\x1b[0m User logged in\n"))
		})

		It("should skip the identifier segment when no id resolves", func() {
			log := newPretty(logger.Options{DisableTimestamp: true})
			log.Info("plain")

			Expect(buf.String()).To(Equal("\x1b[34mINFO \x1b[0m plain\n"))
		})

		DescribeTable("level colors and padding",
			func(level string, want string) {
				log := newPretty(logger.Options{Level: "debug", DisableTimestamp: true})
				emitAt(log, level, "x")
				Expect(buf.String()).To(Equal(want))
			},
			Entry("debug is cyan", "debug", "\x1b[36mDEBUG\x1b[0m x\n"),
			Entry("info is blue", "info", "\x1b[34mINFO \x1b[0m x\n"),
			Entry("success is green", "success", "\x1b[32mSUCCESS\x1b[0m x\n"),
			Entry("warn is yellow", "warn", "\x1b[33mWARN \x1b[0m x\n"),
			Entry("error is red", "error", "\x1b[31mERROR\x1b[0m x\n"),
		)
	})

	Describe("metadata block", func() {
		It("should dump metadata as an indented dim block with sorted keys", func() {
			log := newPretty(logger.Options{ID: "API", DisableTimestamp: true})
			log.Info("User logged in", logger.Metadata{
				"userId":      12345,
				"preferences": map[string]any{"theme": "dark"},
			})

			Expect(buf.String()).To(Equal(
				"\x1b[34mINFO \x1b[0m \x1b[1mAPI:\x1b[0m User logged in\n" +
					"  \x1b[90mpreferences:\x1b[0m\n" +
					"  \x1b[90m  theme: dark\x1b[0m\n" +
					"  \x1b[90muserId: 12345\x1b[0m\n"))
		})

		It("should not append a block for empty metadata", func() {
			log := newPretty(logger.Options{DisableTimestamp: true})
			log.Info("bare", logger.Metadata{})

			Expect(strings.Count(buf.String(), "\n")).To(Equal(1))
		})

		It("should keep long values on a single unwrapped line", func() {
			long := strings.Repeat("abc ", 60)
			log := newPretty(logger.Options{DisableTimestamp: true})
			log.Info("wide", logger.Metadata{"payload": long})

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			Expect(lines).To(HaveLen(2))
			Expect(lines[1]).To(ContainSubstring(long))
		})
	})

	Describe("error rendering", func() {
		It("should render an error-only entry with a red stack and cause block", func() {
			log := newPretty(logger.Options{DisableTimestamp: true})
			log.Error(logger.ErrorValue{
				Name:    "IOError",
				Message: "pipe burst",
				Stack:   "frame one\n\tfile.go:10",
				Cause:   logger.ErrorValue{Name: "DiskError", Message: "disk full"},
			})

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			Expect(lines).To(Equal([]string{
				"\x1b[31mERROR\x1b[0m \x1b[1mIOError:\x1b[0m pipe burst",
				"  \x1b[31mframe one\x1b[0m",
				"  \x1b[31m\tfile.go:10\x1b[0m",
				"  \x1b[31mcause:\x1b[0m",
				"  \x1b[31m  message: disk full\x1b[0m",
				"  \x1b[31m  name: DiskError\x1b[0m",
			}))
		})

		It("should render a captured stack as red indented lines", func() {
			log := newPretty(logger.Options{DisableTimestamp: true})
			log.Error(pkgerrors.New("kaboom"))

			out := buf.String()
			Expect(out).To(ContainSubstring(".go:"))

			lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
			Expect(len(lines)).To(BeNumerically(">", 1))
			for _, line := range lines[1:] {
				Expect(line).To(HavePrefix("  \x1b[31m"))
			}
		})

		It("should render an annotated error as a dim metadata block", func() {
			log := newPretty(logger.Options{DisableTimestamp: true})
			log.Error(logger.ErrorValue{Name: "IOError", Message: "pipe burst"},
				logger.Metadata{"attempt": 1})

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			Expect(lines).To(Equal([]string{
				"\x1b[31mERROR\x1b[0m pipe burst",
				"  \x1b[90mattempt: 1\x1b[0m",
				"  \x1b[90merror:\x1b[0m",
				"  \x1b[90m  message: pipe burst\x1b[0m",
				"  \x1b[90m  name: IOError\x1b[0m",
			}))
		})
	})
})
