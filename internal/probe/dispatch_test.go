package probe_test

import (
	"context"
	"errors"
	"time"

	"github.com/CristiGvl/picoCPUCount/internal/platform"
	"github.com/CristiGvl/picoCPUCount/internal/probe"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Dispatcher", func() {
	var (
		registry   *probe.Registry
		dispatcher *probe.Dispatcher
		currentKey platform.Key
	)

	BeforeEach(func() {
		registry = probe.NewRegistry()
		currentKey = "test-platform"
		dispatcher = probe.NewDispatcher(registry)
		dispatcher.Current = func() platform.Key { return currentKey }
	})

	Context("when a probe is registered for the current platform", func() {
		BeforeEach(func() {
			registry.RegisterFunc("test-platform", "stub", func(ctx context.Context) probe.Result {
				return probe.Result{Cores: 4, Processors: 8}
			})
		})

		It("should return the full pair", func() {
			counts, err := dispatcher.Counts(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(counts).To(Equal(probe.Result{Cores: 4, Processors: 8}))
		})

		It("should return the core count only", func() {
			cores, err := dispatcher.Cores(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(cores).To(Equal(4))
		})

		It("should return the processor count only", func() {
			processors, err := dispatcher.Processors(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(processors).To(Equal(8))
		})

		It("should shape a narrowed query to the selected field", func() {
			res, err := dispatcher.Query(context.Background(), probe.SelectCores)
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(probe.Result{Cores: 4}))

			res, err = dispatcher.Query(context.Background(), probe.SelectProcessors)
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(probe.Result{Processors: 8}))
		})

		It("should return equal results across consecutive queries", func() {
			first, err := dispatcher.Counts(context.Background())
			Expect(err).NotTo(HaveOccurred())
			second, err := dispatcher.Counts(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		})

		It("should reject a query selecting both single-value modes", func() {
			_, err := dispatcher.Query(context.Background(), probe.SelectCores|probe.SelectProcessors)
			var conflict *probe.ConflictError
			Expect(errors.As(err, &conflict)).To(BeTrue())
		})
	})

	Context("when no probe is registered for the current platform", func() {
		BeforeEach(func() {
			currentKey = "unknown-os"
		})

		It("should fail with the unrecognized platform key", func() {
			_, err := dispatcher.Counts(context.Background())
			var unavailable *probe.UnavailableError
			Expect(errors.As(err, &unavailable)).To(BeTrue())
			Expect(unavailable.Platform).To(Equal(platform.Key("unknown-os")))
			Expect(err.Error()).To(ContainSubstring("unknown-os"))
		})

		It("should still reject a conflicting selection first", func() {
			_, err := dispatcher.Query(context.Background(), probe.SelectCores|probe.SelectProcessors)
			var conflict *probe.ConflictError
			Expect(errors.As(err, &conflict)).To(BeTrue())
		})
	})

	Context("when the probe returns non-positive counts", func() {
		BeforeEach(func() {
			currentKey = "broken"
			registry.RegisterFunc("broken", "broken-stub", func(ctx context.Context) probe.Result {
				return probe.Result{}
			})
		})

		It("should fail with the probe name and the invalid result", func() {
			_, err := dispatcher.Counts(context.Background())
			var failure *probe.FailureError
			Expect(errors.As(err, &failure)).To(BeTrue())
			Expect(failure.Probe).To(Equal("broken-stub"))
			Expect(failure.Result).To(Equal(probe.Result{}))
		})

		It("should treat a single zero field as invalid", func() {
			registry.RegisterFunc("broken", "half-stub", func(ctx context.Context) probe.Result {
				return probe.Result{Cores: 0, Processors: 4}
			})

			_, err := dispatcher.Counts(context.Background())
			var failure *probe.FailureError
			Expect(errors.As(err, &failure)).To(BeTrue())
			Expect(failure.Probe).To(Equal("half-stub"))
			Expect(failure.Result).To(Equal(probe.Result{Processors: 4}))
		})
	})

	Context("when the probe outlives the query", func() {
		BeforeEach(func() {
			// Stays busy well past cancellation, like a wedged subprocess.
			registry.RegisterFunc("test-platform", "slow-stub", func(ctx context.Context) probe.Result {
				<-ctx.Done()
				time.Sleep(100 * time.Millisecond)
				return probe.Result{Cores: 1, Processors: 1}
			})
		})

		It("should fail with a timeout naming the probe", func() {
			dispatcher.Timeout = 20 * time.Millisecond

			_, err := dispatcher.Counts(context.Background())
			var timeout *probe.TimeoutError
			Expect(errors.As(err, &timeout)).To(BeTrue())
			Expect(timeout.Probe).To(Equal("slow-stub"))
		})

		It("should surface caller cancellation as the context error", func() {
			dispatcher.Timeout = time.Minute
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := dispatcher.Counts(ctx)
			Expect(errors.Is(err, context.Canceled)).To(BeTrue())
		})
	})
})
