package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/lionrock/treasury/docs"
)

// topicCmd prints an embedded documentation topic.
type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "display a documentation topic" }
func (*topicCmd) Usage() string {
	return `tpc topic [<name>]

  Without arguments, lists the available topics.
`
}

func (*topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		topics, err := docs.GetAllTopics()
		if err != nil {
			return fail(err)
		}
		fmt.Println("Available topics:")
		for _, t := range topics {
			fmt.Printf("  %s\n", t)
		}
		return subcommands.ExitSuccess
	}
	content, err := docs.GetTopic(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	render(content)
	return subcommands.ExitSuccess
}
