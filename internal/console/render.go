package console

import (
	"strings"
	"time"

	"github.com/charityfund/charity/internal/models"
	"github.com/charityfund/charity/internal/store"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02 15:04:05"

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatDate(t time.Time) string {
	return t.Local().Format(dateLayout)
}

func (c *Console) renderDonors(donors []models.Donor) {
	c.println("List of Donors:")
	if len(donors) == 0 {
		c.println("No donors found.")
		return
	}

	for _, donor := range donors {
		c.printf("ID: %d, Name: %s, Email: %s, Phone: %s\n", donor.ID, donor.Name, donor.Email, donor.Phone)
		for _, donation := range donor.Donations {
			c.printf("  Donation ID: %d, Amount: %s, Date: %s\n",
				donation.ID, formatMoney(donation.Amount), formatDate(donation.DonationDate))
		}
	}
}

func (c *Console) renderDonations(donations []models.Donation) {
	c.println("List of Donations:")
	if len(donations) == 0 {
		c.println("No donations found.")
		return
	}

	for _, donation := range donations {
		c.printf("ID: %d, Amount: %s, Date: %s\n", donation.ID, formatMoney(donation.Amount), formatDate(donation.DonationDate))
		c.printf("  Donor: %s, Project: %s\n", donation.Donor.Name, donation.Project.Name)
	}
}

func (c *Console) renderProjects(projects []models.Project) {
	c.println("List of Projects:")
	if len(projects) == 0 {
		c.println("No projects found.")
		return
	}

	for _, project := range projects {
		c.printf("ID: %d, Name: %s, Description: %s, Goal Amount: %s\n",
			project.ID, project.Name, project.Description, formatMoney(project.GoalAmount))

		if len(project.Donations) > 0 {
			c.println("  Donations:")
			for _, donation := range project.Donations {
				c.printf("    Donation ID: %d, Amount: %s, Date: %s\n",
					donation.ID, formatMoney(donation.Amount), formatDate(donation.DonationDate))
			}
		}

		if len(project.VolunteerProjects) > 0 {
			c.println("  Volunteer Projects:")
			for _, link := range project.VolunteerProjects {
				c.printf("    Volunteer: %s, Hours Worked: %d\n", link.Volunteer.Name, link.HoursWorked)
			}
		}
	}
}

func (c *Console) renderVolunteers(volunteers []models.Volunteer) {
	c.println("List of Volunteers:")
	if len(volunteers) == 0 {
		c.println("No volunteers found.")
		return
	}

	for _, volunteer := range volunteers {
		c.printf("ID: %d, Name: %s, Email: %s, Phone: %s\n", volunteer.ID, volunteer.Name, volunteer.Email, volunteer.Phone)
		for _, link := range volunteer.VolunteerProjects {
			c.printf("  Project: %s, Hours Worked: %d\n", link.Project.Name, link.HoursWorked)
		}
	}
}

func (c *Console) renderVolunteerProjects(links []models.VolunteerProject) {
	c.println("List of Volunteer Projects:")
	if len(links) == 0 {
		c.println("No volunteer projects found.")
		return
	}

	for _, link := range links {
		c.printf("ID: %d, Volunteer: %s (ID: %d), Project: %s (ID: %d), Hours Worked: %d\n",
			link.ID, link.Volunteer.Name, link.VolunteerID, link.Project.Name, link.ProjectID, link.HoursWorked)
	}
}

func (c *Console) renderProgress(progress []store.ProjectProgress) {
	c.println("Project Totals:")
	if len(progress) == 0 {
		c.println("No projects found.")
		return
	}

	for _, p := range progress {
		c.printf("ID: %d, Name: %s, Goal: %s, Raised: %s, Remaining: %s\n",
			p.ProjectID, p.Name, formatMoney(p.Goal), formatMoney(p.Raised), formatMoney(p.Remaining()))
		c.printf("  Donations: %d, Volunteers: %d, Hours Worked: %d\n", p.Donations, p.Volunteers, p.VolunteerHours)
	}
}

// titleWords upper-cases the first letter of every word.
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
