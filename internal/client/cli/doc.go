// Package cli provides the interactive users screen for the terminal.
//
// It wires configuration, the REST client, the local snapshot database and
// the UserListSync service, fetches the collection once on start and then
// runs a REPL. Every command maps to one UserListSync operation; outcomes are
// printed as "[success] ..." / "[error] ..." notifications.
//
// Commands:
//
//	help                  show available commands
//	l | list              print the users (the record being edited is marked)
//	reload                fetch the collection again
//	add <name>            create a user
//	edit <id>             start renaming a user
//	name <text>           change the name being edited
//	save                  send the edited name
//	cancel                leave edit mode
//	delete | rm <id>      delete a user
//	cached                print the last saved snapshot
//	exit | quit           leave the program
package cli
