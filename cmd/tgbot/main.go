package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	braking "Brakelab/internal/calc/braking"
)

// Quick-estimate Telegram bot: answers "/stop <speed> <surface> [water_mm]"
// with the computed stopping distances.

type Update struct {
	UpdateID int      `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int    `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type UpdateResponse struct {
	OK     bool     `json:"ok"`
	Result []Update `json:"result"`
}

func main() {
	token := os.Getenv("TOKEN_BOT")
	if token == "" {
		log.Fatal("TOKEN_BOT missing")
	}

	offset := 0
	for {
		updates, err := getUpdates(token, offset)
		if err != nil {
			log.Println("getUpdates error:", err)
			time.Sleep(2 * time.Second)
			continue
		}
		for _, u := range updates {
			offset = u.UpdateID + 1
			if u.Message != nil {
				handleMessage(token, u.Message)
			}
		}
		time.Sleep(1 * time.Second)
	}
}

func handleMessage(token string, msg *Message) {
	text := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(text, "/stop") {
		if strings.HasPrefix(text, "/start") || strings.HasPrefix(text, "/help") {
			sendMessage(token, msg.Chat.ID, usage())
		}
		return
	}

	parts := strings.Fields(text)
	if len(parts) < 2 {
		sendMessage(token, msg.Chat.ID, usage())
		return
	}

	input := braking.DefaultInput()
	speed, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		sendMessage(token, msg.Chat.ID, "Speed must be a number. "+usage())
		return
	}
	input.SpeedKmh = speed
	if len(parts) > 2 {
		input.Surface = parts[2]
	}
	if len(parts) > 3 {
		if water, err := strconv.ParseFloat(parts[3], 64); err == nil {
			input.WaterDepthMM = water
		}
	}

	res, err := braking.Calculate(input)
	if err != nil {
		sendMessage(token, msg.Chat.ID, "Calculation error: "+err.Error())
		return
	}
	sendMessage(token, msg.Chat.ID, formatResult(input, res))
}

func formatResult(in braking.Input, res braking.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%.0f km/h on %s", in.SpeedKmh, in.Surface)
	if res.EffectiveWaterDepthMM > 0 {
		fmt.Fprintf(&b, " (%.1f mm water)", res.EffectiveWaterDepthMM)
	}
	b.WriteString("\n")
	if res.CanStopWithBrakes {
		fmt.Fprintf(&b, "Reaction: %.0f m\nBraking: %.0f m\nTotal: %.0f m (%.0f car lengths)\n",
			res.ReactionDistanceM, res.BrakingDistanceM, res.StoppingDistanceM, res.StoppingDistanceCars)
	} else if res.CanStopEventually {
		fmt.Fprintf(&b, "Brakes cannot stop here; the car coasts to rest after %.0f m\n", res.StoppingDistanceM)
	} else {
		b.WriteString("The car cannot stop on this slope at all.\n")
	}
	fmt.Fprintf(&b, "Risk: %s", res.Risk.Level)
	if res.Hydroplaning.IsHydroplaning {
		b.WriteString("\n🌊 Hydroplaning!")
	}
	return b.String()
}

func usage() string {
	return "Usage: /stop <speed_kmh> [surface] [water_mm]\nSurfaces: asphalt, concrete, gravel, snow_packed, ice, ..."
}

func getUpdates(token string, offset int) ([]Update, error) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/getUpdates?timeout=20&offset=%d", token, offset)
	res, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	var out UpdateResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

func sendMessage(token string, chatID int64, text string) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", token)
	payload := map[string]any{
		"chat_id": chatID,
		"text":    text,
	}
	b, _ := json.Marshal(payload)
	_, _ = http.Post(url, "application/json", strings.NewReader(string(b)))
}
