package energy_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestEnergy(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Energy Suite")
}
