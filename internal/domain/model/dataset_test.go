package model_test

import (
	"encoding/json"
	"testing"

	model "github.com/okian/tempmap/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestDataset(t *testing.T) {
	convey.Convey("Given a dataset with repeated years and months", t, func() {
		ds := model.Dataset{
			BaseTemperature: 8.66,
			MonthlyVariance: []model.MonthRecord{
				{Year: 1753, Month: 1, Variance: -1.366},
				{Year: 1753, Month: 2, Variance: -2.223},
				{Year: 1754, Month: 1, Variance: -0.5},
				{Year: 1760, Month: 12, Variance: 0.25},
				{Year: 1754, Month: 2, Variance: 1},
			},
		}

		convey.Convey("Then Years should be distinct in first-seen order", func() {
			convey.So(ds.Years(), convey.ShouldResemble, []int{1753, 1754, 1760})
		})

		convey.Convey("And Months should be distinct in first-seen order", func() {
			convey.So(ds.Months(), convey.ShouldResemble, []int{1, 2, 12})
		})

		convey.Convey("And YearSpan should be max minus min", func() {
			convey.So(ds.YearSpan(), convey.ShouldEqual, 7)
		})

		convey.Convey("And Temperature should add the base temperature", func() {
			convey.So(ds.Temperature(ds.MonthlyVariance[2]), convey.ShouldAlmostEqual, 8.16, 1e-9)
		})

		convey.Convey("And Len should count records", func() {
			convey.So(ds.Len(), convey.ShouldEqual, 5)
		})

		convey.Convey("And Find should locate a record by year and month", func() {
			rec, ok := ds.Find(1754, 2)
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(rec.Variance, convey.ShouldEqual, 1)

			_, ok = ds.Find(1999, 1)
			convey.So(ok, convey.ShouldBeFalse)
		})
	})

	convey.Convey("Given an empty dataset", t, func() {
		ds := model.Dataset{BaseTemperature: 8.66}

		convey.Convey("Then derived values should be empty and zero", func() {
			convey.So(ds.Years(), convey.ShouldBeEmpty)
			convey.So(ds.Months(), convey.ShouldBeEmpty)
			convey.So(ds.YearSpan(), convey.ShouldEqual, 0)
			convey.So(ds.Len(), convey.ShouldEqual, 0)
		})
	})
}

func TestDatasetJSON(t *testing.T) {
	convey.Convey("Given the upstream JSON shape", t, func() {
		raw := `{"baseTemperature":8.66,"monthlyVariance":[{"year":1753,"month":1,"variance":-1.366}]}`

		convey.Convey("When decoding", func() {
			var ds model.Dataset
			err := json.Unmarshal([]byte(raw), &ds)

			convey.Convey("Then fields should map by their upstream names", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(ds.BaseTemperature, convey.ShouldEqual, 8.66)
				convey.So(ds.MonthlyVariance, convey.ShouldHaveLength, 1)
				convey.So(ds.MonthlyVariance[0], convey.ShouldResemble, model.MonthRecord{Year: 1753, Month: 1, Variance: -1.366})
			})
		})
	})
}
