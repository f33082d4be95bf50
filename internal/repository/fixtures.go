package repository

import (
	"time"

	"github.com/mahanteshk/foliochat/internal/domain"
)

func seedProjects() []domain.Project {
	return []domain.Project{
		{
			ID:           "1",
			Title:        "VrindaAI Game Assistant",
			Description:  "An intelligent multi-agent AI assistant designed specifically for game developers, offering automated asset generation, procedural content creation, and intelligent NPC dialogue systems.",
			Technologies: []string{"Python", "LLM", "Game AI", "Procedural Generation", "Unity Integration"},
			Featured:     true,
		},
		{
			ID:           "2",
			Title:        "Procedural World Generator",
			Description:  "Advanced terrain and biome generation system using noise algorithms, erosion simulation, and vegetation placement for creating realistic open-world environments in Unity and Unreal Engine.",
			Technologies: []string{"C#", "Unity", "Perlin Noise", "Compute Shaders", "Procedural Generation"},
			Featured:     true,
		},
		{
			ID:           "3",
			Title:        "Physics-Based Combat Sim",
			Description:  "Realistic combat simulation with advanced ragdoll physics, weapon dynamics, and impact calculations built in Unreal Engine 5 using C++ and Blueprints.",
			Technologies: []string{"C++", "Blueprints", "Unreal Engine 5", "Physics Simulation", "Chaos Physics"},
			Featured:     true,
		},
		{
			ID:           "4",
			Title:        "Multiplayer Racing Game",
			Description:  "High-performance multiplayer racing game with vehicle physics, track generation, real-time networking, and dynamic weather systems built with Unity and Mirror networking.",
			Technologies: []string{"C#", "Unity", "Mirror Networking", "Vehicle Physics", "Shaders"},
			Featured:     true,
		},
		{
			ID:           "5",
			Title:        "AI Behavior Tree System",
			Description:  "Flexible behavior tree framework for creating complex NPC AI with decision-making, pathfinding, combat tactics, and dynamic response to player actions.",
			Technologies: []string{"C++", "C#", "AI Navigation", "State Machines", "Pathfinding"},
			Featured:     true,
		},
		{
			ID:           "6",
			Title:        "VR Flight Simulator",
			Description:  "Immersive virtual reality flight simulator with realistic aerodynamics, weather simulation, and cockpit interactions built for Oculus Quest using Unity XR.",
			Technologies: []string{"C#", "Unity XR", "VR Development", "Flight Physics", "Quest 2"},
			Featured:     true,
		},
	}
}

func seedBlogPosts() []domain.BlogPost {
	return []domain.BlogPost{
		{
			ID:          "1",
			Title:       "AI-Driven NPCs: The Future of Gaming",
			Excerpt:     "Exploring how large language models and behavior trees can create truly intelligent and responsive non-player characters.",
			Content:     "Full content here...",
			PublishedAt: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Title:       "Optimizing Unreal Engine 5 Performance",
			Excerpt:     "Essential techniques for achieving 60+ FPS in large-scale open worlds using Nanite, Lumen, and custom optimization strategies.",
			Content:     "Full content here...",
			PublishedAt: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			Title:       "Procedural Generation in Game Design",
			Excerpt:     "How algorithmic content creation can deliver infinite replayability while maintaining quality and player engagement.",
			Content:     "Full content here...",
			PublishedAt: time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}
