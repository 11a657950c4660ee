package game

import "fmt"

// RenderHUD draws the textual layer for the current state.
func RenderHUD(r *Renderer, gs *GameSession, fbW, fbH int) {
	switch gs.State {
	case StateMenu:
		title := "HARDCORE SNAKE"
		r.DrawString(title, fbW/2-TextWidth(title, 4.0)/2, fbH/2-140, 4.0, Palette.TextSuccess)

		lines := []string{
			"1 - PICK THE LOCK",
			"2 - SNAKE RUN",
		}
		for i, msg := range lines {
			r.DrawString(msg, fbW/2-TextWidth(msg, 2.0)/2, fbH/2-20+i*40, 2.0, Palette.TextBright)
		}

		best := fmt.Sprintf("BEST SNAKE SCORE %d", gs.BestScore)
		r.DrawString(best, fbW/2-TextWidth(best, 1.5)/2, fbH/2+80, 1.5, Palette.TextDim)

		quit := "ESC - QUIT"
		r.DrawString(quit, fbW/2-TextWidth(quit, 1.5)/2, fbH/2+120, 1.5, Palette.TextDim)

	case StateLock:
		title := "PICK THE LOCK"
		r.DrawString(title, fbW/2-TextWidth(title, 2.5)/2, 16, 2.5, Palette.TextBright)

		if gs.Lock.Unlocked {
			msg := "UNLOCKED! CODE " + LockCode
			r.DrawString(msg, fbW/2-TextWidth(msg, 2.5)/2, fbH-110, 2.5, Palette.TextSuccess)
			again := "R - NEW LOCK   ESC - MENU"
			r.DrawString(again, fbW/2-TextWidth(again, 1.25)/2, fbH-60, 1.25, Palette.TextDim)
		} else {
			hint := "UP/DOWN PICK A PIN   LEFT/RIGHT SLIDE IT"
			r.DrawString(hint, fbW/2-TextWidth(hint, 1.25)/2, fbH-90, 1.25, Palette.TextDim)
			hint2 := "GREEN MARKS MEAN CLOSE   R - RESET   ESC - MENU"
			r.DrawString(hint2, fbW/2-TextWidth(hint2, 1.25)/2, fbH-60, 1.25, Palette.TextDim)
		}

	case StateSnakeIdle:
		title := "SNAKE RUN"
		r.DrawString(title, fbW/2-TextWidth(title, 3.0)/2, fbH/2-120, 3.0, Palette.TextSuccess)

		msg := "SPACE - START"
		r.DrawString(msg, fbW/2-TextWidth(msg, 2.0)/2, fbH/2-20, 2.0, Palette.TextBright)

		hint := fmt.Sprintf("SCORE %d IN %d SECONDS TO EARN THE CODE", CodeThreshold, TimeLimit)
		r.DrawString(hint, fbW/2-TextWidth(hint, 1.25)/2, fbH/2+30, 1.25, Palette.TextDim)

		keys := "ARROWS OR WASD STEER   SWIPE WORKS TOO   ESC - MENU"
		r.DrawString(keys, fbW/2-TextWidth(keys, 1.25)/2, fbH/2+65, 1.25, Palette.TextDim)

	case StateSnakeRunning:
		s := float32(1.5)
		scoreStr := fmt.Sprintf("SCORE %d", gs.Sim.Score)
		r.DrawString(scoreStr, 10, 8, s, Palette.TextBright)

		timeCol := Palette.TextBright
		if gs.Sim.TimeLeft <= 5 {
			timeCol = Palette.TextWarn
		}
		timeStr := fmt.Sprintf("TIME %d", gs.Sim.TimeLeft)
		r.DrawString(timeStr, fbW/2-TextWidth(timeStr, s)/2, 8, s, timeCol)

		speedStr := fmt.Sprintf("SPEED %.1f", gs.Sim.TicksPerSecond())
		r.DrawString(speedStr, fbW-TextWidth(speedStr, s)-10, 8, s, Palette.TextDim)

	case StateSnakeOver:
		head := "GAME OVER"
		if gs.Sim.EndReason == EndTimeout {
			head = "TIME UP"
		}
		r.DrawString(head, fbW/2-TextWidth(head, 3.0)/2, fbH/2-130, 3.0, Palette.TextWarn)

		score := fmt.Sprintf("SCORE %d   BEST %d", gs.Sim.Score, gs.BestScore)
		r.DrawString(score, fbW/2-TextWidth(score, 1.5)/2, fbH/2-60, 1.5, Palette.TextBright)

		code := gs.Sim.UnlockCode()
		var codeMsg string
		var codeCol RGB
		if code == CodePlaceholder {
			codeMsg = fmt.Sprintf("CODE %s - SCORE %d TO UNLOCK", code, CodeThreshold)
			codeCol = Palette.TextDim
		} else {
			codeMsg = "CODE " + code
			codeCol = Palette.TextSuccess
		}
		r.DrawString(codeMsg, fbW/2-TextWidth(codeMsg, 2.0)/2, fbH/2-10, 2.0, codeCol)

		retry := "SPACE - RETRY   ESC - MENU"
		r.DrawString(retry, fbW/2-TextWidth(retry, 1.25)/2, fbH/2+50, 1.25, Palette.TextDim)
	}

	r.FlushText(fbW, fbH)
}
