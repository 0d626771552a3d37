package suite

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"seq-rebuild/node"
)

// Suite is the root structure of a suite file.
type Suite struct {
	Version string `yaml:"version"`
	Cases   []Case `yaml:"cases"`
}

// Case is one operation call and its expected outcome.
type Case struct {
	Name string
	Op   string
	Args []node.Value
	// Want is compared with the result when HasWant is set.
	Want    node.Value
	HasWant bool
	// WantErr expects the call to be rejected.
	WantErr bool
}

type caseYAML struct {
	Name    string    `yaml:"name"`
	Op      string    `yaml:"op"`
	Args    yaml.Node `yaml:"args"`
	Want    yaml.Node `yaml:"want"`
	WantErr bool      `yaml:"wantErr"`
}

// UnmarshalYAML decodes a case. Args and want go through node.FromYAML so a
// literal null stays a null value instead of disappearing.
func (c *Case) UnmarshalYAML(n *yaml.Node) error {
	var raw caseYAML
	if err := n.Decode(&raw); err != nil {
		return err
	}

	out := Case{Name: raw.Name, Op: raw.Op, WantErr: raw.WantErr}

	switch raw.Args.Kind {
	case 0:
		// no args
	case yaml.SequenceNode:
		for _, a := range raw.Args.Content {
			v, err := node.FromYAML(a)
			if err != nil {
				return fmt.Errorf("case %q: args: %w", raw.Name, err)
			}
			out.Args = append(out.Args, v)
		}
	default:
		return fmt.Errorf("case %q: line %d: args must be a sequence", raw.Name, raw.Args.Line)
	}

	if raw.Want.Kind != 0 {
		v, err := node.FromYAML(&raw.Want)
		if err != nil {
			return fmt.Errorf("case %q: want: %w", raw.Name, err)
		}
		out.Want = v
		out.HasWant = true
	}

	*c = out

	return nil
}

// MarshalYAML encodes a case in the form UnmarshalYAML accepts.
func (c Case) MarshalYAML() (any, error) {
	type encoded struct {
		Name    string       `yaml:"name"`
		Op      string       `yaml:"op"`
		Args    []node.Value `yaml:"args,flow"`
		Want    *node.Value  `yaml:"want,omitempty"`
		WantErr bool         `yaml:"wantErr,omitempty"`
	}

	e := encoded{Name: c.Name, Op: c.Op, Args: c.Args, WantErr: c.WantErr}
	if c.HasWant {
		want := c.Want
		e.Want = &want
	}

	return e, nil
}
