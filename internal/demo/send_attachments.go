package demo

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrymomot/sendbox/pkg/mailer"
)

// maxLocalAttachments caps how many files the demo picks up from the
// attachment directory. The vendor rejects requests over 25 MB anyway;
// this keeps a cluttered directory from tripping that.
const maxLocalAttachments = 5

var attachments = Demo{
	Name:    "attachments",
	Title:   "Attachments",
	Summary: "Send a message carrying the embedded sample file plus whatever sits in the attachment directory.",
	Params:  messageParams,
	Run:     runAttachments,
}

func runAttachments(ctx context.Context, env *Env, params Params, rep *Report) error {
	msg := env.Builder.Message(overridesFrom(params))
	rcpt := msg.Recipients[0]

	if msg.Subject == "" {
		msg.Subject = "Files from the Sendbox attachments demo"
	}
	msg.Text = "The files below were attached by the Sendbox attachments demo."
	msg.HTML = "<p>The files below were attached by the <strong>Sendbox</strong> attachments demo.</p>"

	sample, err := fs.ReadFile(assets, "assets/sample.txt")
	if err != nil {
		return err
	}
	msg.AddAttachment(mailer.Attachment{
		Filename:    "sample.txt",
		ContentType: "text/plain",
		Content:     sample,
	})
	rep.Linef("attached sample.txt (%d bytes, embedded)", len(sample))

	attachLocalFiles(env, msg, rep)

	rep.Linef("sending %d attachment(s) to %s", len(msg.Attachments), rcpt.Address)
	results, err := env.Sender.Send(ctx, msg)
	if err != nil {
		return err
	}
	rep.Results(results)
	return nil
}

// attachLocalFiles adds regular files from the attachment directory to the
// message. Unreadable files produce a warning and are skipped; they never
// fail the run.
func attachLocalFiles(env *Env, msg *mailer.Message, rep *Report) {
	if env.AttachmentDir == "" {
		rep.Warnf("ATTACHMENT_DIR is not set; sending the embedded sample only")
		return
	}

	entries, err := os.ReadDir(env.AttachmentDir)
	if err != nil {
		rep.Warnf("cannot read attachment directory %s: %v", env.AttachmentDir, err)
		return
	}

	attached := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if attached == maxLocalAttachments {
			rep.Warnf("stopping after %d local files; remove some from %s to attach others", maxLocalAttachments, env.AttachmentDir)
			break
		}
		att, err := mailer.LoadAttachment(filepath.Join(env.AttachmentDir, entry.Name()))
		if err != nil {
			rep.Warnf("skipping %s: %v", entry.Name(), err)
			continue
		}
		msg.AddAttachment(att)
		attached++
		rep.Linef("attached %s (%s, %d bytes)", att.Filename, att.ContentType, len(att.Content))
	}

	if attached == 0 {
		rep.Warnf("no readable files in %s", env.AttachmentDir)
	}
}
