// file: envx/cmd/envx/main.go
package main

func main() {
	Execute()
}
