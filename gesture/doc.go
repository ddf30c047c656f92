// Package gesture holds the touch-gesture rules shared by the placement
// controllers: controller profiles, the per-controller session, tap counting
// with delayed reset, hold-to-drag promotion, pinch scaling and the surface
// placement pose.
//
// Nothing here touches the ECS world or the AR host directly; the placement
// system in ecs/system drives these pieces once per frame.
package gesture
