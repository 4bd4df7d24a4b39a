package core

import (
	"reflect"
	"testing"
)

func TestDescribeSeederSortsParams(t *testing.T) {
	DescribeSeeder("test-described",
		Parameter{Key: "zeta", Type: ParamTypeInt},
		Parameter{Key: "alpha", Type: ParamTypeFloat},
	)
	params, ok := SeederParams("test-described")
	if !ok {
		t.Fatalf("expected the seeder to be described")
	}
	if len(params) != 2 || params[0].Key != "alpha" || params[1].Key != "zeta" {
		t.Fatalf("unexpected params: %+v", params)
	}
}

func TestUnknownOptions(t *testing.T) {
	DescribeSeeder("test-opts", Parameter{Key: "seed", Type: ParamTypeInt})
	got := UnknownOptions("test-opts", map[string]string{"seed": "1", "w": "4", "h": "4", "sede": "2", "b": "x"})
	if expected := []string{"b", "sede"}; !reflect.DeepEqual(got, expected) {
		t.Fatalf("UnknownOptions = %v, expected %v", got, expected)
	}
	if got := UnknownOptions("dead", map[string]string{"anything": "1"}); !reflect.DeepEqual(got, []string{"anything"}) {
		t.Fatalf("dead accepts no options, got %v", got)
	}
	if got := UnknownOptions("undescribed", map[string]string{"anything": "1"}); got != nil {
		t.Fatalf("undescribed seeders accept anything, got %v", got)
	}
}
