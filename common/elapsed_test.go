package common_test

import (
	"testing"
	"time"

	"github.com/master-bogdan/termfolio/common"
	"github.com/master-bogdan/termfolio/hamlet"
)

func TestCanUseStopwatch(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut := common.Stopwatch("hello")
	wont_be.Nil(sut)
	limit := common.Duration(10 * time.Millisecond)
	must_be.True(sut.Report() < limit)
}

func TestDurationFormatsAsSeconds(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	must_be.Equal("1.500", common.Duration(1500*time.Millisecond).String())
	must_be.Equal(common.Duration(time.Second), common.Duration(1999*time.Millisecond).Truncate(common.Duration(time.Second)))
}
