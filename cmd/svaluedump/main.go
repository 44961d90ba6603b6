// Command svaluedump is a small CLI exercising the svalue library
// end-to-end: decoding finalized images, walking them by key path, and
// converting YAML documents into finalized images.
package main

func main() {
	execute()
}
