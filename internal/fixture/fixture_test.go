package fixture

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/pavilion/internal/adapters/ingest"
	"github.com/okian/pavilion/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	convey.Convey("Given the default generation config", t, func() {
		cfg := DefaultConfig()

		convey.Convey("the output loads through the ingest pipeline", func() {
			var matches, deliveries bytes.Buffer
			convey.So(Generate(ctx, cfg, &matches, &deliveries), convey.ShouldBeNil)

			dataset, err := ingest.Read(ctx, &matches, &deliveries)
			convey.So(err, convey.ShouldBeNil)
			convey.So(dataset.Matches, convey.ShouldHaveLength, cfg.Seasons*cfg.MatchesPerSeason)
			convey.So(dataset.OrphanDeliveries, convey.ShouldEqual, 0)
			convey.So(len(dataset.Deliveries), convey.ShouldBeGreaterThanOrEqualTo,
				len(dataset.Matches)*inningsPerMatch*oversPerInnings*ballsPerOver)
		})

		convey.Convey("the same seed reproduces identical files", func() {
			var m1, d1, m2, d2 bytes.Buffer
			convey.So(Generate(ctx, cfg, &m1, &d1), convey.ShouldBeNil)
			convey.So(Generate(ctx, cfg, &m2, &d2), convey.ShouldBeNil)
			convey.So(m1.String(), convey.ShouldEqual, m2.String())
			convey.So(d1.String(), convey.ShouldEqual, d2.String())
		})

		convey.Convey("a different seed changes the data", func() {
			var m1, d1, m2, d2 bytes.Buffer
			convey.So(Generate(ctx, cfg, &m1, &d1), convey.ShouldBeNil)
			other := cfg
			other.Seed = 99
			convey.So(Generate(ctx, other, &m2, &d2), convey.ShouldBeNil)
			convey.So(d1.String(), convey.ShouldNotEqual, d2.String())
		})

		convey.Convey("a cancelled context aborts generation", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			var m, d bytes.Buffer
			convey.So(Generate(cancelled, cfg, &m, &d), convey.ShouldNotBeNil)
		})
	})
}
