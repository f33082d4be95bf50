// Command foliochat-cli is a terminal front end for the chat widget. It
// drives the same session engine the embedded widget uses, against a
// running foliochat server.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mahanteshk/foliochat/internal/widget"
)

var (
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	helpStyle      = lipgloss.NewStyle().Faint(true)
)

func main() {
	var serverURL string

	rootCmd := &cobra.Command{
		Use:   "foliochat-cli",
		Short: "Chat with the portfolio assistant from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(serverURL)
		},
	}
	rootCmd.Flags().StringVar(&serverURL, "server", "http://localhost:5000", "Base URL of the foliochat server")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runChat(serverURL string) error {
	session := widget.NewSession(widget.Options{
		Client:      widget.NewHTTPClient(serverURL),
		Recognition: widget.Unsupported(),
	})
	defer session.Close()

	session.Open()

	st := session.Snapshot()
	fmt.Println(assistantStyle.Render("assistant:"), st.History[0].Content)
	fmt.Println(helpStyle.Render("type a message, or /quit to exit"))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(userStyle.Render("you: "))
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "/quit":
			return nil
		case "/voice":
			session.ToggleVoice()
			printNewTurns(session, len(session.Snapshot().History)-1)
			continue
		}

		seen := len(session.Snapshot().History)
		session.SetDraft(line)
		session.Submit()
		waitForReply(session)
		printNewTurns(session, seen+1) // skip the echoed user turn
	}
}

// waitForReply blocks until the pending request settles and the reveal of
// the reply has finished.
func waitForReply(session *widget.Session) {
	deadline := time.Now().Add(30 * time.Second)
	var last string
	for time.Now().Before(deadline) {
		time.Sleep(80 * time.Millisecond)
		st := session.Snapshot()
		if st.Pending {
			continue
		}
		latest := st.History[len(st.History)-1].Content
		if latest != "" && latest == last {
			return
		}
		last = latest
	}
}

func printNewTurns(session *widget.Session, from int) {
	st := session.Snapshot()
	for _, turn := range st.History[from:] {
		if turn.Role == widget.RoleAssistant {
			fmt.Println(assistantStyle.Render("assistant:"), turn.Content)
		}
	}
}
