package replay_test

import (
	"bytes"
	"log"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cachesim/cache"
	"github.com/sarchlab/cachesim/replay"
	"github.com/sarchlab/cachesim/trace"
)

var _ = Describe("LogTracer", func() {
	var (
		buf      bytes.Buffer
		geometry cache.Geometry
	)

	BeforeEach(func() {
		buf.Reset()
		geometry = cache.Geometry{IdxBits: 4, Assoc: 1, BlockBits: 4}
	})

	runVerbose := func(input string) []string {
		tracer := replay.NewLogTracer(log.New(&buf, "", 0))
		replayer := replay.NewReplayer(
			cache.New(geometry),
			trace.NewScanner(strings.NewReader(input)),
			replay.WithTracer(tracer))
		replayer.Run()

		return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	}

	It("should print one outcome per load or store", func() {
		lines := runVerbose(" L 10,1\n L 10,1\n")

		Expect(lines).To(Equal([]string{
			"L 10,1 miss",
			"L 10,1 hit",
		}))
	})

	It("should print both outcomes of a modify", func() {
		lines := runVerbose(" M 20,1\n M 20,1\n")

		Expect(lines).To(Equal([]string{
			"M 20,1 miss hit",
			"M 20,1 hit hit",
		}))
	})

	It("should mark evictions", func() {
		lines := runVerbose(" L 10,1\n L 110,1\n")

		Expect(lines).To(Equal([]string{
			"L 10,1 miss",
			"L 110,1 miss eviction",
		}))
	})

	It("should print nothing for records that model no access", func() {
		lines := runVerbose("I 400bd9,3\n L 10,1\n")

		Expect(lines).To(Equal([]string{"L 10,1 miss"}))
	})
})
