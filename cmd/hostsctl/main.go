// Command hostsctl inspects and edits a hosts file from the command line.
package main

func main() {
	Execute()
}
