package orbits_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestOrbits(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Orbits Suite")
}
