package graph_test

import (
	"reflect"
	"testing"

	"github.com/aretw0/physrisk/internal/presentation/graph"
	"github.com/aretw0/physrisk/pkg/domain"
)

func TestFailedObjects(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  []string
	}{
		{"root field", []string{"year"}, []string{"AssetExposureRequest"}},
		{"nested field", []string{"assets.items[2].latitude"}, []string{"Asset"}},
		{"list element", []string{"assets.items[0]"}, []string{"Asset"}},
		{"map entry", []string{"assets.items[0].attributes.storeys"}, []string{"Asset"}},
		{"whole object", []string{"calc_settings"}, []string{"CalcSettings"}},
		{"root", []string{""}, []string{"AssetExposureRequest"}},
		{"deduplicated", []string{"assets.items[0].latitude", "assets.items[1].longitude", "scenario"},
			[]string{"Asset", "AssetExposureRequest"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.FailedObjects(domain.AssetExposureRequestSchema, tt.paths)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FailedObjects(%v) = %v, want %v", tt.paths, got, tt.want)
			}
		})
	}
}
