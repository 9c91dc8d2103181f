package persona

// Message tables keyed by personality and tone. Every cell is non-empty
// so the generators never need a nil check beyond the map lookups.

var encouragementMessages = map[Personality]map[Tone][]string{
	Gentle: {
		ToneAriana: {
			"You're doing amazing, babe! Keep shining! ✨💕",
			"Yuh, look at you go! So proud of you! 🌟",
			"You got this, sweetie! Believe in yourself! 💖",
			"You're literally crushing it! Love that for you! ✨",
			"Keep going, hun! You're incredible! 💫",
			"Aww, you're doing so well! Keep it up! 🥰",
			"Such a queen/king! You're amazing! 👑✨",
			"You're glowing! Keep that energy! 💕",
		},
		ToneGordon: {
			"Right, you're doing well. Keep that focus sharp!",
			"Good! Now maintain that standard. Don't slip!",
			"Excellent work. Keep it consistent!",
			"That's more like it! Stay on track!",
			"Well done! Now don't get complacent!",
			"Keep it up! You're showing real dedication!",
			"Good job! Stay focused and deliver!",
			"That's the effort I like to see! Continue!",
		},
		ToneSnoop: {
			"Ayy, you vibin' real nice right now, keep it up! 😎",
			"That's what I'm talkin' bout, fo shizzle! 🎵",
			"You cruisin' smooth, homie! Stay in the zone! ✌️",
			"Real recognize real, and you doin' great! 💯",
			"Keep it flowin', you got the rhythm! 🎶",
			"You keepin' it 100, that's what's up! 🔥",
			"Smooth moves, my friend! Stay chill and focused! 😌",
			"You got that good energy, keep ridin' that wave! 🌊",
		},
	},
	Funny: {
		ToneAriana: {
			"Okurrr, at least you're trying! That's cute! 😏✨",
			"Wow, are you... actually working? Plot twist! 💅",
			"Not bad, not bad. I've seen worse, babe! 😌",
			"You're doing it! Should I call the press? 📰✨",
			"Look at you being all responsible! Character development! 🎭",
			"Yuh, I guess that counts as productivity! 😂💕",
			"Are you okay? You're actually focusing! 🤔✨",
			"Werk! Even if it's taking forever! 💃",
		},
		ToneGordon: {
			"Finally! Took you long enough to start!",
			"It's about bloody time you got moving!",
			"Oh, you decided to work? Brilliant! 🙄",
			"Look who's actually trying! Miracles do happen!",
			"Well, well, well... someone's awake!",
			"Is this what focus looks like for you? Interesting.",
			"Don't celebrate yet, you've barely started!",
			"Shocking! You're actually doing something!",
		},
		ToneSnoop: {
			"Aight, you finally showed up to the party! 😂",
			"Better late than never, I suppose, dawg! 🤷",
			"Look who decided to get their hustle on! 💼",
			"Well damn, you really about to do this? Bet! 😏",
			"Yo, procrastination called, it misses you! 📞",
			"Finally! I was about to roll out! 🎲",
			"Took you a minute, but here we are! 😆",
			"You sure you ready? Aight, let's see what you got! 🎯",
		},
	},
	Pushy: {
		ToneAriana: {
			"Come ON, babe! You can do way better than this! 💪✨",
			"Stop being lazy! I know you're capable of more! 😤",
			"Yuh, pick up the pace! This is taking forever! ⏰",
			"Is this your best? Because it better not be! 💢",
			"Get it together! You're better than this mess! 🔥",
			"Move it! Time's wasting and so is your potential! ⚡",
			"Wake UP! Show me what you're really made of! 👊",
			"Less thinking, more DOING! Let's GO! 🚀",
		},
		ToneGordon: {
			"MOVE IT! You're slower than a snail in cement!",
			"What are you waiting for?! GET ON WITH IT!",
			"This is pathetic! I've seen turtles move faster!",
			"COME ON! You call this effort?! PUSH HARDER!",
			"Stop making excuses and START WORKING!",
			"Is this a joke?! Give me 110% NOW!",
			"You're wasting time! FOCUS and DELIVER!",
			"WAKE UP! This won't finish itself!",
		},
		ToneSnoop: {
			"Yo, quit slackin'! Time ain't gonna wait for you! ⏰",
			"Come on now, you movin' like molasses! Speed it up! 🏃",
			"Dawg, I ain't got all day! Let's get it! 💨",
			"Stop playin' around! Get that work done! 📋",
			"Yo, you gonna finish or just stare at it? Move! 👀",
			"Get off your behind and make it happen! 🎯",
			"Aight, enough chillin'! Time to get serious! 💼",
			"You talkin' bout it or you bout it? Show me! 💪",
		},
	},
}

var chatResponses = map[Personality]map[Tone][]string{
	Gentle: {
		ToneAriana: {
			"That's such a good point, babe! Keep going! 💕",
			"Yuh, I'm here with you! You're doing great! ✨",
			"Aww, that makes so much sense! You're so smart! 🥰",
			"You've got this, sweetie! I believe in you! 💖",
			"That's amazing thinking! Keep it up! 🌟",
			"I'm so proud of you for working through this! 💫",
		},
		ToneGordon: {
			"Good observation. Now apply it!",
			"That's solid thinking. Keep that focus!",
			"Well reasoned. What's your next step?",
			"I'm here. You're doing well. Continue!",
			"That makes sense. Now execute!",
			"Good question. Think it through carefully.",
		},
		ToneSnoop: {
			"Aight, I feel you on that one! Keep vibin'! ✌️",
			"Real talk, that's a good point, homie! 💯",
			"I'm here chillin' with you, keep it movin'! 😎",
			"Fo shizzle, you're makin' sense! Stay focused! 🎵",
			"That's what's up! Keep that flow goin'! 🌊",
			"Yeah, I'm pickin' up what you're puttin' down! 🎶",
		},
	},
	Funny: {
		ToneAriana: {
			"Okay, werk I guess! At least you're thinking! 💅",
			"Hmm, interesting take... sure, why not! 😏✨",
			"Look at you being all intellectual! Love it! 📚",
			"That's... one way to think about it, babe! 😂",
			"Oh wow, brain cells activated! Yuh! 🧠✨",
			"I mean, I've heard worse ideas! Keep going! 💕",
		},
		ToneGordon: {
			"Finally, a decent thought! Took long enough!",
			"Oh, so you CAN think! Interesting!",
			"Well, that's not completely terrible!",
			"Look who's using their brain! About time!",
			"Is that your best? Fine, I'll take it!",
			"Not bad. Surprisingly not bad!",
		},
		ToneSnoop: {
			"Aight, aight, I see you thinkin' now! 😂",
			"Oh snap, you got jokes AND thoughts! 🎭",
			"Look who woke up! Welcome to the party! 🎉",
			"Well damn, didn't know you had it in you! 💡",
			"Yo, that's actually not wack! Keep goin'! 🎯",
			"Okay, okay, I'm vibin' with that energy! 😆",
		},
	},
	Pushy: {
		ToneAriana: {
			"Good! Now DO something about it! Move! 💪",
			"Yeah, yeah, less talking, more WORKING! ⚡",
			"Great! Now stop chatting and GET IT DONE! 🔥",
			"Okay, cool! NOW APPLY IT! Let's go! 🚀",
			"Nice thought! But thoughts don't finish tasks! 😤",
			"You gonna talk or you gonna work? CHOOSE! 💢",
		},
		ToneGordon: {
			"Right! Now STOP TALKING and START DOING!",
			"Good! Now shut up and GET TO WORK!",
			"Fine! But I want to see ACTION, not words!",
			"Brilliant! Now MOVE IT! Time's ticking!",
			"Excellent! Now EXECUTE! Go, go, GO!",
			"I don't need commentary! I need RESULTS!",
		},
		ToneSnoop: {
			"Aight, cool! Now quit yappin' and work! 💼",
			"Yeah, yeah, I heard you! Now DO it! 🏃",
			"Less talk, more hustle! Let's GO! 💨",
			"That's nice, now put in the work, dawg! 💪",
			"Okay, I get it! Now show me somethin'! 🎯",
			"Cool story! Now get back to grindin'! ⚡",
		},
	},
}

// Spoken when a study phase finishes and the break begins.
var breakStartMessages = map[Personality]map[Tone]string{
	Gentle: {
		ToneAriana: "Break time, babe! You deserve it! Rest up! 🥰💕",
		ToneGordon: "Break time. Rest well. You've earned it!",
		ToneSnoop:  "Break time, homie! Kick back and relax! 😎✌️",
	},
	Funny: {
		ToneAriana: "Finally, a break! Don't get too comfortable! 😏✨",
		ToneGordon: "Break. Don't get lazy now!",
		ToneSnoop:  "Yo, break time! But don't fall asleep on me! 😂",
	},
	Pushy: {
		ToneAriana: "Break time! But make it quick! We got work to do! 💪",
		ToneGordon: "5 MINUTES! Then back to work! GO!",
		ToneSnoop:  "Aight, quick break! Don't get too comfy, dawg! ⏰",
	},
}

// Spoken when a break finishes and the next study phase begins.
var backToWorkMessages = map[Personality]map[Tone]string{
	Gentle: {
		ToneAriana: "Time's up, sweetie! You did amazing! Great work! 🎉✨",
		ToneGordon: "Time! Good work. Take your break!",
		ToneSnoop:  "Ayy, time's up! You crushed it! Take five! 🎵",
	},
	Funny: {
		ToneAriana: "Wow, you actually finished! Miracles! 😂💕",
		ToneGordon: "Time! Surprisingly, not terrible!",
		ToneSnoop:  "Damn, you made it! Didn't think you had it in you! 😆",
	},
	Pushy: {
		ToneAriana: "Time! But you could've done more! Do better! 💢",
		ToneGordon: "TIME! That's barely acceptable! IMPROVE!",
		ToneSnoop:  "Time! But I expect MORE next round! Let's go! 🔥",
	},
}

// Advice pools attached to session summaries.
var restRecommendations = []string{
	"🌟 Do 10 jumping jacks to get your blood flowing!",
	"🧘 Try the 4-7-8 breathing technique: Breathe in for 4, hold for 7, out for 8.",
	"💃 Put on your favorite song and dance like nobody's watching!",
	"🚶 Take a quick walk around your space - even 2 minutes helps!",
	"💧 Hydrate! Your brain is 73% water. Grab a glass!",
	"👀 Look at something 20 feet away for 20 seconds to rest your eyes.",
	"🤸 Do some gentle stretches - touch your toes, roll your shoulders!",
	"🌳 Look out a window at nature for a quick mental reset.",
}

var efficiencyTips = []string{
	"💡 Try the Pomodoro Technique: 25 minutes focused work, 5 minute break.",
	"🎯 Break down big tasks into smaller, specific subtasks you can finish in one session.",
	"📱 Put your phone in another room during focus time.",
	"🎧 Experiment with different types of background music or white noise.",
	"✅ Set a clear, specific goal before starting each session.",
	"🧠 Work on your hardest tasks when your energy is highest.",
	"🚫 Close unnecessary browser tabs and apps before you start.",
	"⏰ Schedule your study sessions at the same time each day to build a habit.",
}

// Greeting returns a salutation for the given hour of day.
func Greeting(hour int) string {
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
