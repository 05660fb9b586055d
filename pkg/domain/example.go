// example.go — Sample input for taqrir init.
package domain

// SampleInputJSON is a complete, valid input bundle written by the CLI's
// init command as a starting point.
const SampleInputJSON = `{
  "student": {
    "id": "stu-001",
    "name": "Omar Hassan",
    "className": "Grade 5 - B",
    "guardianPhone": "+256700000000",
    "number": "17"
  },
  "record": {
    "date": "2026-03-02",
    "day": "Monday",
    "attendance": "present",
    "participation": "excellent",
    "homework": "good",
    "behavior": "excellent",
    "notes": "Led the group discussion in science class."
  },
  "settings": {
    "schoolName": "Al-Noor Primary School",
    "orgName": "Al-Noor Education Trust",
    "link": "https://school.example.com/students/stu-001",
    "message": "Parent-teacher meetings start next Sunday.",
    "slogan": "Knowledge, Character, Community",
    "phone": "+256 414 000 000",
    "counselorName": "School Counselor"
  },
  "schedule": [
    { "day": "Monday", "period": 1, "subject": "Mathematics", "teacher": "Mr. Ssebintu", "room": "B-12" },
    { "day": "Monday", "period": 2, "subject": "English", "teacher": "Ms. Nambi", "room": "B-12" },
    { "day": "Monday", "period": 3, "subject": "Science", "teacher": "Mr. Okello", "room": "Lab 1", "notes": "Bring lab coat" },
    { "day": "Tuesday", "period": 1, "subject": "Art", "teacher": "Ms. Achen", "room": "C-3" }
  ]
}`
