package replay_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cachesim/cache"
	"github.com/sarchlab/cachesim/replay"
	"github.com/sarchlab/cachesim/trace"
)

// run replays input against a fresh cache of the given geometry.
func run(geometry cache.Geometry, input string, opts ...replay.Option) replay.Summary {
	replayer := replay.NewReplayer(
		cache.New(geometry), trace.NewScanner(strings.NewReader(input)), opts...)
	return replayer.Run()
}

var _ = Describe("Replayer", func() {
	// 16 sets, direct mapped, 16B blocks.
	geometry := cache.Geometry{IdxBits: 4, Assoc: 1, BlockBits: 4}

	It("should model one access per load or store", func() {
		summary := run(geometry, " L 10,1\n S 18,1\n")

		Expect(summary.Hits + summary.Misses).To(Equal(uint64(2)))
	})

	It("should model two accesses per modify, the second a hit", func() {
		summary := run(geometry, " M 20,1\n")

		Expect(summary.Misses).To(Equal(uint64(1)))
		Expect(summary.Hits).To(Equal(uint64(1)))
	})

	It("should ignore instruction markers", func() {
		summary := run(geometry, "I 400bd9,3\n L 10,1\n")

		Expect(summary.Hits + summary.Misses).To(Equal(uint64(1)))
	})

	It("should ignore unknown opcodes", func() {
		summary := run(geometry, " X 10,1\n")

		Expect(summary).To(Equal(replay.Summary{}))
	})

	It("should count accesses per record kind across a mixed trace", func() {
		input := "I 400bd9,3\n L 10,1\n M 20,1\n S 30,1\n M 40,1\n"
		summary := run(geometry, input)

		// 2 loads/stores + 2 modifies = 2 + 4 accesses.
		Expect(summary.Hits + summary.Misses).To(Equal(uint64(6)))
	})

	It("should replay the reference trace", func() {
		input := " L 10,1\n" +
			" M 20,1\n" +
			" L 22,1\n" +
			" S 18,1\n" +
			" L 110,1\n" +
			" L 210,1\n" +
			" M 12,1\n"
		summary := run(geometry, input)

		Expect(summary).To(Equal(replay.Summary{Hits: 4, Misses: 5, Evictions: 3}))
	})

	It("should be deterministic across fresh replays", func() {
		input := " L 10,1\n M 110,4\n S 210,8\n L 10,2\n M 310,1\n"

		first := run(geometry, input)
		second := run(geometry, input)
		Expect(second).To(Equal(first))
	})

	It("should stop silently at the first unparsable record", func() {
		replayer := replay.NewReplayer(
			cache.New(geometry),
			trace.NewScanner(strings.NewReader(" L 10,1\n M 20,1\n???\n L 30,1\n")))
		summary := replayer.Run()

		Expect(replayer.Done()).To(BeTrue())
		Expect(replayer.RecordsConsumed()).To(Equal(uint64(2)))
		Expect(summary.Hits + summary.Misses).To(Equal(uint64(3)))
	})

	It("should count instruction markers as consumed records", func() {
		replayer := replay.NewReplayer(
			cache.New(geometry),
			trace.NewScanner(strings.NewReader("I 400bd9,3\n L 10,1\n")))
		replayer.Run()

		Expect(replayer.RecordsConsumed()).To(Equal(uint64(2)))
	})

	Describe("Step", func() {
		It("should replay one record at a time", func() {
			replayer := replay.NewReplayer(
				cache.New(geometry),
				trace.NewScanner(strings.NewReader(" L 10,1\n L 10,1\n")))

			Expect(replayer.Step()).To(BeTrue())
			Expect(replayer.Step()).To(BeTrue())
			Expect(replayer.Step()).To(BeFalse())
			Expect(replayer.Done()).To(BeTrue())

			// Once done, further steps are no-ops.
			Expect(replayer.Step()).To(BeFalse())
		})
	})
})
