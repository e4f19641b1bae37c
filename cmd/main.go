package cmd

import "github.com/google/subcommands"

// Commands lists every subcommand the binary registers.
var Commands = []subcommands.Command{
	&createCmd{},
	&newAccountCmd{},
	&deleteAccountCmd{},
	&importDonationsCmd{},
	&importPayoutsCmd{},
	&exportCmd{},
	&infoCmd{},
	&balanceCmd{},
	&topicCmd{},
}
