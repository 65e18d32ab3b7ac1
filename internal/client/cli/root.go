package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if sess, ok := a.store.Current(); ok {
		return fmt.Sprintf("(%s)", sess.User.Email)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to the book club CLI (type 'help' for commands)")

	if sess, ok := a.store.Current(); ok {
		fmt.Printf("Restored session for %s\n", sess.User.Email)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
