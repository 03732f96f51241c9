// Command qosst is the operator tool for the QOSST control protocol:
// key generation, a standing responder, and client-side diagnostics.
package main

func main() {
	execute()
}
