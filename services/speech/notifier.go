// File: services/speech/notifier.go
package speech

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"tripdesk/utils"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const synthesisTimeout = 30 * time.Second

// Notifier speaks assistant replies through Google Cloud TTS and a local
// player. Playback is fire-and-forget: the caller never waits, and playback
// failures are logged, never propagated. Concurrent turns may overlap audio.
type Notifier struct {
	Enabled         bool
	CredentialsFile string
}

func NewNotifier(enabled bool, credentialsFile string) *Notifier {
	return &Notifier{Enabled: enabled, CredentialsFile: credentialsFile}
}

// Announce hands text off to a detached playback goroutine and returns
// immediately. Empty text is logged and skipped.
func (n *Notifier) Announce(text string) {
	logger := utils.GetLogger()

	if text == "" {
		logger.Warn("Speech notifier received empty text, skipping")
		return
	}
	if !n.Enabled {
		logger.Debug("Speech playback disabled, skipping")
		return
	}

	go n.speak(text)
}

func (n *Notifier) speak(text string) {
	logger := utils.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), synthesisTimeout)
	defer cancel()

	audio, err := n.synthesize(ctx, text)
	if err != nil {
		logger.Warn("Speech synthesis failed", zap.Error(err))
		return
	}
	if err := playAudio(audio); err != nil {
		logger.Warn("Speech playback failed", zap.Error(err))
	}
}

func (n *Notifier) synthesize(ctx context.Context, text string) ([]byte, error) {
	var opts []option.ClientOption
	if n.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(n.CredentialsFile))
	}
	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize TTS client: %w", err)
	}
	defer client.Close()

	resp, err := client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: "en-US",
			SsmlGender:   texttospeechpb.SsmlVoiceGender_NEUTRAL,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis request failed: %w", err)
	}
	return resp.AudioContent, nil
}

func playAudio(audio []byte) error {
	if _, err := exec.LookPath("ffplay"); err != nil {
		return fmt.Errorf("ffplay not found in system PATH: %v", err)
	}

	tmp, err := os.CreateTemp("", "reply-*.mp3")
	if err != nil {
		return fmt.Errorf("failed to create temp audio file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(audio); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	tmp.Close()

	cmd := exec.Command("ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", tmp.Name())
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffplay failed: %w", err)
	}
	return nil
}
