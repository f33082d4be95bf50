package service

import "strings"

// responseRule maps keyword presence to a canned reply. A rule matches when
// every keyword in all is present and, if any is non-empty, at least one of
// its keywords is present too.
type responseRule struct {
	all      []string
	any      []string
	response string
}

func (r responseRule) matches(lower string) bool {
	for _, kw := range r.all {
		if !strings.Contains(lower, kw) {
			return false
		}
	}
	if len(r.any) == 0 {
		return true
	}
	for _, kw := range r.any {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Resolver turns free-text visitor questions into canned responses by
// ordered, case-insensitive substring matching. It is pure and
// deterministic: the first matching rule wins and a generic fallback
// guarantees a non-empty response for any input.
type Resolver struct {
	rules    []responseRule
	fallback string
}

// NewResolver creates a resolver with the portfolio rule table.
func NewResolver() *Resolver {
	return &Resolver{
		rules:    defaultRules(),
		fallback: fallbackResponse,
	}
}

// Resolve returns the canned response for text.
func (r *Resolver) Resolve(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range r.rules {
		if rule.matches(lower) {
			return rule.response
		}
	}
	return r.fallback
}

const fallbackResponse = "That's an interesting question! I can tell you about Mahantesh's projects like VrindaAI (AI assistant), Blender automation, Unreal Engine integration, and AI video editing. I can also share information about his expertise in AI Engineering, IoT, and Cybersecurity. What specific aspect would you like to know more about?"

func defaultRules() []responseRule {
	return []responseRule{
		{
			any:      []string{"vrindaai", "vrinda"},
			response: "VrindaAI is my flagship project - an advanced AI assistant powered by large language models. It's designed to understand natural language, automate tasks, and provide intelligent responses. The project combines cutting-edge NLP with practical automation capabilities, making it a versatile tool for various applications.",
		},
		{
			any:      []string{"blender", "3d", "automation"},
			response: "I've developed a comprehensive Blender automation system using Python scripts. It streamlines complex 3D workflows, enables batch processing of renders, and automates repetitive tasks. This project demonstrates how scripting can dramatically improve creative workflows and productivity in 3D modeling and rendering.",
		},
		{
			any:      []string{"unreal", "game", "engine"},
			response: "My Unreal Engine integration work focuses on creating custom plugins and blueprints that connect game engines with external AI services. I've built systems that enable real-time AI interactions within game environments, opening up new possibilities for dynamic, intelligent game mechanics.",
		},
		{
			any:      []string{"video", "editing", "agent"},
			response: "The AI Video Editing Agent is an automated system that analyzes video content, detects key moments, and applies professional editing techniques autonomously. Using computer vision and machine learning, it can identify scene changes, apply effects, and generate polished edits - significantly reducing the time needed for video post-production.",
		},
		{
			all:      []string{"ai"},
			any:      []string{"experience", "background"},
			response: "I'm an AI Engineer with a strong focus on building practical, intelligent systems. My experience spans natural language processing, computer vision, and automation. I love working at the intersection of AI and creative tools, finding ways to make complex technology accessible and useful.",
		},
		{
			any:      []string{"iot", "internet of things"},
			response: "My IoT work includes developing smart home automation systems and industrial monitoring solutions. I focus on creating secure, efficient IoT architectures that can scale while maintaining data integrity. Security is always a top priority in my IoT implementations.",
		},
		{
			any:      []string{"cybersecurity", "security"},
			response: "I'm passionate about cybersecurity research, particularly in vulnerability assessment and penetration testing. I believe that understanding security from an attacker's perspective is crucial for building robust systems. My work involves studying emerging threats and developing defensive strategies.",
		},
		{
			any:      []string{"project", "work"},
			response: "I've worked on several exciting projects including VrindaAI (an advanced AI assistant), Blender automation tools, Unreal Engine integrations, and AI-powered video editing systems. Each project combines my interests in AI, automation, and creative technology. Would you like to know more about any specific project?",
		},
		{
			any:      []string{"skill", "technology", "tech stack"},
			response: "My core skills include Python, C++, machine learning, natural language processing, computer vision, IoT architecture, and cybersecurity. I work extensively with AI frameworks, game engines like Unreal, 3D tools like Blender, and various automation technologies. I'm always learning and exploring new technologies in the AI space.",
		},
		{
			any:      []string{"contact", "hire", "collaborate"},
			response: "I'm always interested in exciting projects and collaborations! You can reach out to me through the contact form on this website, or connect with me on LinkedIn and GitHub. I'm particularly interested in projects involving AI, automation, and innovative applications of machine learning.",
		},
		{
			any:      []string{"education", "study", "student"},
			response: "I'm currently a student specializing in IoT and Cybersecurity, while actively working on AI engineering projects. I believe in hands-on learning and apply theoretical knowledge to real-world projects like VrindaAI and my automation tools.",
		},
		{
			any:      []string{"future", "goal", "plan"},
			response: "My goal is to push the boundaries of what's possible with AI and automation. I'm particularly interested in making AI more accessible and practical for everyday applications. Future projects will focus on integrating AI more deeply into creative workflows and exploring new frontiers in autonomous systems.",
		},
		{
			any:      []string{"hello", "hi", "hey"},
			response: "Hello! I'm Mahantesh's AI assistant. I can answer questions about his projects (VrindaAI, Blender automation, Unreal integration, video editing), his expertise in AI Engineering, IoT, and Cybersecurity, or anything else you'd like to know. What would you like to learn about?",
		},
		{
			any:      []string{"thank", "thanks"},
			response: "You're welcome! Feel free to ask me anything else about Mahantesh's work or projects. I'm here to help!",
		},
	}
}
