// Command smoke dials a running quizline TCP server, replays a scripted
// session and prints the transcript.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"time"
)

func main() {
	if err := run(); err != nil {
		log.Printf("smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "localhost:3355", "TCP address of the server")
	timeout := flag.Duration("timeout", 5*time.Second, "total timeout for the run")
	flag.Parse()

	conn, err := net.DialTimeout("tcp", *addr, *timeout)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(*timeout)); err != nil {
		return fmt.Errorf("set deadline: %w", err)
	}

	script := []string{
		"help",
		"add",
		"smoke question",
		"smoke answer",
		"list",
		"credits",
		"quit",
	}

	go func() {
		for _, line := range script {
			fmt.Fprintln(conn, line)
			time.Sleep(100 * time.Millisecond)
		}
	}()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		fmt.Println(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read: %w", err)
	}
	return nil
}
