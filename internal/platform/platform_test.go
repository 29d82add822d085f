package platform_test

import (
	"runtime"

	"github.com/CristiGvl/picoCPUCount/internal/platform"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("platform", func() {
	It("should derive the current key from the running OS", func() {
		Expect(platform.Current()).To(Equal(platform.Key(runtime.GOOS)))
	})

	It("should list the platforms with built-in probes", func() {
		Expect(platform.Supported()).To(ContainElements(
			platform.Linux, platform.Windows, platform.Darwin, platform.FreeBSD))
	})
})
