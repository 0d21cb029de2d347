// Package commands defines the wasender command tree.
//
//	wasender            interactive sender (default)
//	wasender send       send one message and exit
//	wasender reset      remove the stored session
//	wasender version    print build information
package commands
