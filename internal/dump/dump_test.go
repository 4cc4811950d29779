package dump_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/duolog/internal/dump"
)

var _ = Describe("Lines", func() {
	Context("with a flat map", func() {
		It("should emit one key per line in lexicographic order", func() {
			lines := dump.Lines(map[string]any{
				"user_id": 42,
				"attempt": 3,
				"source":  "web",
			})
			Expect(lines).To(Equal([]string{
				"attempt: 3",
				"source: web",
				"user_id: 42",
			}))
		})

		It("should render the same value identically on every call", func() {
			value := map[string]any{"b": 1, "a": 2, "c": 3, "d": 4, "e": 5}
			first := dump.Lines(value)
			for i := 0; i < 20; i++ {
				Expect(dump.Lines(value)).To(Equal(first))
			}
		})
	})

	Context("with nested values", func() {
		It("should indent nested maps under their key", func() {
			lines := dump.Lines(map[string]any{
				"request": map[string]any{
					"method": "GET",
					"path":   "/login",
				},
			})
			Expect(lines).To(Equal([]string{
				"request:",
				"  method: GET",
				"  path: /login",
			}))
		})

		It("should render slices as dashed items", func() {
			lines := dump.Lines(map[string]any{
				"tags": []string{"auth", "login"},
			})
			Expect(lines).To(Equal([]string{
				"tags:",
				"  - auth",
				"  - login",
			}))
		})

		It("should nest maps inside slices", func() {
			lines := dump.Lines(map[string]any{
				"hops": []any{
					map[string]any{"host": "edge-1"},
				},
			})
			Expect(lines).To(Equal([]string{
				"hops:",
				"  -",
				"    host: edge-1",
			}))
		})
	})

	Context("with awkward scalars", func() {
		It("should continue multi-line strings on indented lines", func() {
			lines := dump.Lines(map[string]any{
				"note": "first line\nsecond line",
			})
			Expect(lines).To(Equal([]string{
				"note:",
				"  first line",
				"  second line",
			}))
		})

		It("should render nil as null", func() {
			Expect(dump.Lines(map[string]any{"gone": nil})).To(Equal([]string{"gone: null"}))
		})

		It("should render empty containers inline", func() {
			lines := dump.Lines(map[string]any{
				"empty_map":  map[string]any{},
				"empty_list": []int{},
			})
			Expect(lines).To(Equal([]string{
				"empty_list: []",
				"empty_map: {}",
			}))
		})

		It("should render byte slices as text", func() {
			Expect(dump.Lines(map[string]any{"body": []byte("hi")})).To(Equal([]string{"body: hi"}))
		})

		It("should render bare scalars on a single line", func() {
			Expect(dump.Lines("hello")).To(Equal([]string{"hello"}))
			Expect(dump.Lines(true)).To(Equal([]string{"true"}))
			Expect(dump.Lines(3.5)).To(Equal([]string{"3.5"}))
		})
	})

	Context("with pathological nesting", func() {
		It("should collapse values beyond the depth limit", func() {
			deep := map[string]any{"leaf": "v"}
			for i := 0; i < 12; i++ {
				deep = map[string]any{"level": deep}
			}

			lines := dump.Lines(deep)
			Expect(lines).To(ContainElement(ContainSubstring("...")))
		})

		It("should terminate on cyclic maps", func() {
			cyclic := map[string]any{}
			cyclic["self"] = cyclic

			lines := dump.Lines(cyclic)
			Expect(len(lines)).To(BeNumerically(">", 0))
			Expect(lines[len(lines)-1]).To(ContainSubstring("..."))
		})
	})
})
