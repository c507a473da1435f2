package pointsgen

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/reddit/pointsgen/log"
)

// oneof is a flag.Value restricted to the keys of choices.
type oneof struct {
	choices map[string]interface{}
	value   string
}

var _ flag.Getter = (*oneof)(nil)

func (o *oneof) String() string {
	if o == nil {
		return ""
	}
	return o.value
}

func (o *oneof) Get() interface{} {
	return o.choices[o.value]
}

func (o *oneof) Set(v string) error {
	if _, ok := o.choices[v]; ok {
		o.value = v
		return nil
	}
	return fmt.Errorf("%q is not one of the choices of %s", v, o.choicesString())
}

func (o *oneof) choicesString() string {
	choices := make([]string, 0, len(o.choices))
	for c := range o.choices {
		choices = append(choices, c)
	}
	sort.Strings(choices)

	quoted := make([]string, len(choices))
	for i, c := range choices {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	return "(" + strings.Join(quoted, ", ") + ")"
}

func levelChoices() map[string]interface{} {
	choices := make(map[string]interface{}, len(log.Levels))
	for _, l := range log.Levels {
		choices[string(l)] = l
	}
	return choices
}

var formatChoices = map[string]interface{}{
	"console": false,
	"json":    true,
}
