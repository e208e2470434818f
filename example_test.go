package typeflow_test

import (
	"fmt"

	"github.com/lvlath-go/typeflow"
)

// ExampleRegistry demonstrates registering a conversion step and letting
// Convert plan and run it.
func ExampleRegistry() {
	r := typeflow.NewRegistry[string, string, string]()

	r.AddConversion(1, "celsius", nil, "fahrenheit", nil, "c_to_f", func(v any) (any, error) {
		return v.(float64)*9/5 + 32, nil
	})

	got, err := r.Convert(100.0, "fahrenheit", typeflow.WithKeyHave[string, string]("celsius"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(got)
	// Output: 212
}
