package main

import (
	"bytes"
	"fmt"

	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"

	"github.com/henderiw/span/pkg/span"
	"github.com/henderiw/span/pkg/tracktable"
)

var regions = []struct {
	span   span.Bounded
	labels map[string]string
}{
	{span: span.Must(1920, 3840), labels: map[string]string{"type": "clip", "name": "intro"}},
	{span: span.Must(3840, 5760), labels: map[string]string{"type": "clip", "name": "verse"}},
	{span: span.Must(7680, 9600), labels: map[string]string{"type": "automation"}},
}

func main() {
	tt, err := tracktable.New(1920 * 16)
	if err != nil {
		panic(err)
	}

	for _, region := range regions {
		if err := tt.Claim(region.span, region.labels); err != nil {
			panic(err)
		}
	}

	selector, err := GetLabelSelector(map[string]string{"type": "clip"})
	if err != nil {
		panic(err)
	}
	for _, e := range tt.GetByLabel(selector) {
		fmt.Println("clip", e.Span(), e.Data())
	}

	free, err := tt.FindFree(960)
	if err != nil {
		panic(err)
	}
	fmt.Println("free", free)

	// round-trip a span through the codec
	var buf bytes.Buffer
	if err := span.Encode(span.NewWriter(&buf), free); err != nil {
		panic(err)
	}
	decoded, err := span.Decode(span.NewReader(&buf))
	if err != nil {
		panic(err)
	}
	fmt.Println("decoded", decoded)

	pieces := span.All{}.Subtract(span.Must(5760, 5760))
	fmt.Println("cut", pieces)
}

func GetLabelSelector(l map[string]string) (labels.Selector, error) {
	fullselector := labels.NewSelector()
	for k, v := range l {
		req, err := labels.NewRequirement(k, selection.Equals, []string{v})
		if err != nil {
			return nil, err
		}
		fullselector = fullselector.Add(*req)
	}
	return fullselector, nil
}
